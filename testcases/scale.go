package testcases

// scaleCases render at higher simulation scales.
var scaleCases = []Scene{
	{
		Name:  "corner_x2",
		Map:   "# \n  \n",
		Scale: 2,
		Lights: []Light{
			{Position: pt(1.5, 1.5), Color: white, Intensity: 1.5},
		},
	},
	{
		Name: "room_x3",
		Map: "#####\n" +
			"#   #\n" +
			"# # #\n" +
			"#####\n",
		Scale: 3,
		Lights: []Light{
			{Position: pt(1.5, 1.5), Color: warm, Intensity: 3},
		},
	},
}
