package testcases

// wallCases exercise the texture selection without any lights.
var wallCases = []Scene{
	{
		Name: "isolated",
		Map:  "   \n # \n   \n",
	},
	{
		Name: "room",
		Map: "######\n" +
			"#    #\n" +
			"#    #\n" +
			"######\n",
	},
	{
		Name: "cross",
		Map: "  #  \n" +
			"  #  \n" +
			"#####\n" +
			"  #  \n" +
			"  #  \n",
	},
	{
		Name: "diagonal",
		Map: "#   \n" +
			" #  \n" +
			"  # \n" +
			"   #\n",
	},
	{
		Name: "block",
		Map: "     \n" +
			" ### \n" +
			" ### \n" +
			" ### \n" +
			"     \n",
	},
	{
		Name: "checker",
		Map: "# # \n" +
			" # #\n" +
			"# # \n" +
			" # #\n",
	},
}
