package enhance_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-potfield/potfield/enhance"
	"github.com/cwbudde/algo-potfield/potfield/synth"
)

func ExampleTilt() {
	gen, _ := synth.NewGenerator(32, 32, 100, 100)
	x, y := gen.PlaneGrid()
	data, _ := gen.GaussianSource(250, 1600, 1600, 400)

	tilt, _ := enhance.Tilt(x, y, data)

	bounded := true
	for _, v := range tilt.Data() {
		if v < -math.Pi/2 || v > math.Pi/2 {
			bounded = false
		}
	}
	fmt.Printf("samples: %d\n", tilt.Len())
	fmt.Printf("within [-pi/2, pi/2]: %v\n", bounded)

	// Output:
	// samples: 1024
	// within [-pi/2, pi/2]: true
}
