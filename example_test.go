package curvefit_test

import (
	"context"
	"fmt"

	curvefit "github.com/tphakala/go-curvefit"
)

func ExampleFitInterpolation() {
	curve, err := curvefit.FitInterpolation([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	e, err := curve.Evaluate(curvefit.Point{X: 0.5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("g=%.4f g'=%.4f g''=%.4f\n", e.Value, e.First, e.Second)
	// Output: g=0.7500 g'=1.1667 g''=-2.0000
}

func ExampleFitSmoothing() {
	curve, err := curvefit.FitSmoothing([]float64{0, 1, 2}, []float64{0, 3, 0}, nil, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, x := range []float64{0, 0.5, 1} {
		y, err := curvefit.EvaluateAt(curve, x)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("g(%.1f)=%.4f\n", x, y)
	}
	// Output:
	// g(0.0)=1.0000
	// g(0.5)=1.5000
	// g(1.0)=2.0000
}

func ExampleSmoothSweep() {
	knots := curvefit.PointsFromX([]float64{0, 1, 2})
	curves, err := curvefit.SmoothSweep(context.Background(), knots, []float64{0, 3, 0}, nil, []float64{0, 0.5})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, c := range curves {
		fmt.Printf("p=%.1f alpha=%.2f\n", c.Smoothing(), c.Coefficients())
	}
	// Output:
	// p=0.0 alpha=[0.00 3.00 0.00]
	// p=0.5 alpha=[1.00 2.00 1.00]
}

func ExampleNew() {
	c, err := curvefit.New(&curvefit.Config{Kind: curvefit.KindSmoothing, Smoothing: 1})
	fmt.Println(c == nil, err)
	// Output: true invalid curve configuration: invalid smoothing parameter: smoothing must be in [0, 1), got 1
}
