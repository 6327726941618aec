// Command emathdemo exercises the emath package from the command line.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/emath"
)

func main() {
	var (
		angle   = flag.Float64("angle", 90, "rotation angle in degrees")
		axis    = flag.String("axis", "z", "rotation axis: x, y or z")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		emath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	radians := emath.Radians(float32(*angle))

	var (
		unit   emath.Vector3
		matrix emath.Matrix4x4
		input  emath.Vector3
	)
	switch *axis {
	case "x":
		unit = emath.V3(1, 0, 0)
		matrix.SetRotationX(radians)
		input = emath.V3(0, 1, 0)
	case "y":
		unit = emath.V3(0, 1, 0)
		matrix.SetRotationY(radians)
		input = emath.V3(0, 0, 1)
	case "z":
		unit = emath.V3(0, 0, 1)
		matrix.SetRotation(radians)
		input = emath.V3(1, 0, 0)
	default:
		log.Fatalf("unknown axis %q, want x, y or z", *axis)
	}

	q := emath.FromAxisAngle(unit, radians)
	log.Printf("rotate %v by %g° about %s", input, *angle, *axis)
	log.Printf("  quaternion %v -> %v", q, q.Rotate(input))
	log.Printf("  matrix            -> %v", matrix.TransformVector3(input))

	sample := emath.Mat3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
	log.Printf("det %v, inverse %v", sample.Determinant(), sample.Inverse().M)

	singular := emath.Mat3x3(
		1, 2, 3,
		2, 4, 6,
		0, 0, 1,
	)
	log.Printf("singular inverse %v", singular.Inverse().M)

	log.Printf("Mod(5, 2) = %v, Ceil(2) = %d", emath.Mod(5, 2), emath.Ceil(2))
}
