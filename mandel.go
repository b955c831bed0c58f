package mandel

import "sort"

// Region within the Mandelbrot set. Ymin is the top edge of the image.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func (r Region) TopLeft() Complex     { return Complex{r.Xmin, r.Ymin} }
func (r Region) BottomRight() Complex { return Complex{r.Xmax, r.Ymax} }

// Settings returns settings rendering r on a w × h grid.
func (r Region) Settings(w, h, maxIter uint32, escapeRadius float64) Settings {
	return Settings{
		TopLeft:       r.TopLeft(),
		BottomRight:   r.BottomRight(),
		Width:         w,
		Height:        h,
		MaxIterations: maxIter,
		EscapeRadius:  escapeRadius,
	}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// The whole set, slightly off center
	FullSet = Region{
		Xmin: -2,
		Xmax: 1,
		Ymin: -2,
		Ymax: 2,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var regionsByName = map[string]Region{
	"full":                    FullSet,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

func LookupRegion(name string) (Region, bool) {
	r, ok := regionsByName[name]
	return r, ok
}

// RegionNames lists the names accepted by LookupRegion, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(regionsByName))
	for n := range regionsByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
