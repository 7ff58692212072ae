package testcases

// All contains all scenes, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]Scene{
	"walls": wallCases,
	"light": lightCases,
	"scale": scaleCases,
}
