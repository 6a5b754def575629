package main

import (
	"fmt"
	"io"

	"pkg.jsn.cam/fakejson/pkg/fakejson"
)

func runPresets(stdout io.Writer) int {
	fmt.Fprintf(stdout, "%-8s %-10s %-8s %-10s %s\n", "PRESET", "ELEMENTS", "FIELDS", "ARRAY_LEN", "POLICY")
	for _, name := range fakejson.ListPresets() {
		settings, err := fakejson.Preset(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(stdout, "%-8s %-10d %-8d %-10d %s\n",
			name,
			settings.Shape.Elements,
			settings.Shape.Fields,
			settings.Shape.ArrayLen,
			settings.Policy)
	}
	return 0
}
