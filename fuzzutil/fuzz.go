//go:build gofuzz
// +build gofuzz

package fuzzutil

// Fuzz is the go-fuzz entry point. Return codes follow the go-fuzz
// convention: -1 drops an input the script could not be rendered from, 1
// asks the engine to prioritize the input, and a panic records a crasher.
//
// Ref https://github.com/dvyukov/go-fuzz#usage
func Fuzz(fuzzedData []byte) int {
	input, err := RenderInput(fuzzedData)
	if err != nil {
		return -1
	}
	if check == nil {
		return 0
	}
	if err := check(input); err != nil {
		panic(err)
	}
	return 1
}
