package testcases

import "math"

// lightCases exercise the light compositor.
var lightCases = []Scene{
	{
		// one wall, lit from the opposite tile
		Name: "corner",
		Map:  "# \n  \n",
		Lights: []Light{
			{Position: pt(1.5, 1.5), Color: white, Intensity: 1.5},
		},
	},
	{
		Name: "open_field",
		Map:  "      \n      \n      \n      \n",
		Lights: []Light{
			{Position: pt(3, 2), Color: warm, Intensity: 3},
		},
	},
	{
		Name: "pillar_shadow",
		Map: "        \n" +
			"        \n" +
			"   #    \n" +
			"        \n" +
			"        \n",
		Lights: []Light{
			{Position: pt(1.5, 2.5), Color: white, Intensity: 7},
		},
	},
	{
		Name: "overlap",
		Map: "##########\n" +
			"#        #\n" +
			"#   ##   #\n" +
			"#        #\n" +
			"##########\n",
		Lights: []Light{
			{Position: pt(2.5, 2.5), Color: red, Intensity: 5},
			{Position: pt(7.5, 2.5), Color: blue, Intensity: 5},
		},
	},
	{
		Name: "overlap_reversed",
		Map: "##########\n" +
			"#        #\n" +
			"#   ##   #\n" +
			"#        #\n" +
			"##########\n",
		Lights: []Light{
			{Position: pt(7.5, 2.5), Color: blue, Intensity: 5},
			{Position: pt(2.5, 2.5), Color: red, Intensity: 5},
		},
	},
	{
		Name: "cone",
		Map: "        \n" +
			"        \n" +
			"        \n" +
			"        \n",
		Lights: []Light{
			{Position: pt(0.5, 2), Color: white, Intensity: 7, Direction: 0, FOV: math.Pi / 3},
		},
	},
	{
		Name: "corridor",
		Map: "############\n" +
			"#    #     #\n" +
			"#    #  #  #\n" +
			"#       #  #\n" +
			"############\n",
		Lights: []Light{
			{Position: pt(2.5, 2.5), Color: warm, Intensity: 8},
			{Position: pt(10.5, 1.5), Color: dimmed, Intensity: 4},
		},
	},
}
