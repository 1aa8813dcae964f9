// Package levenshtein_test provides runnable examples for the distance
// functions. Each example runs via "go test -run Example" and shows both the
// call and its expected output.
package levenshtein_test

import (
	"fmt"

	"github.com/liminghu/fuzzystrmatch/levenshtein"
)

// ExampleDistance demonstrates the plain edit distance with unit costs.
// Complexity: O(m·n) time, O(m) memory.
func ExampleDistance() {
	// 1) Compare the classic pair with the default costs (all 1).
	d, err := levenshtein.Distance("kitten", "sitting")
	// 2) Handle any potential error (negative costs, oversized input).
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 3) Two substitutions plus one insertion.
	fmt.Printf("distance=%d\n", d)
	// Output: distance=3
}

// ExampleDistance_weightedCosts demonstrates non-uniform operation costs:
// doubling the substitution cost makes the same pair twice as far apart on
// the substitution steps.
func ExampleDistance_weightedCosts() {
	// 1) Charge 2 per substitution, 1 for everything else.
	d, err := levenshtein.Distance("kitten", "sitting",
		levenshtein.WithCosts(1, 1, 2, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2) Two substitutions at cost 2 plus one insertion at cost 1.
	fmt.Printf("distance=%d\n", d)
	// Output: distance=5
}

// ExampleDistanceLE demonstrates the bounded distance: when the true
// distance exceeds the threshold the function reports maxD+1 instead,
// typically after touching only a narrow band of the matrix.
func ExampleDistanceLE() {
	// 1) A threshold of 2 is too tight for this pair, so the sentinel 3
	//    comes back early.
	d, err := levenshtein.DistanceLE("extensive", "exhaustive", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("maxD=2: %d\n", d)

	// 2) A threshold of 4 is wide enough and the exact distance appears.
	d, err = levenshtein.DistanceLE("extensive", "exhaustive", 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("maxD=4: %d\n", d)
	// Output:
	// maxD=2: 3
	// maxD=4: 4
}

// ExampleDistance_transposing demonstrates the second algorithm variant,
// which counts an adjacent swap as a single edit.
func ExampleDistance_transposing() {
	// 1) Under the default algorithm a swap costs two substitutions.
	plain, err := levenshtein.Distance("AB", "BA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2) The Transposing algorithm recognizes it as one transposition.
	swapped, err := levenshtein.Distance("AB", "BA",
		levenshtein.WithAlgorithm(levenshtein.Transposing))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("plain=%d transposing=%d\n", plain, swapped)
	// Output: plain=2 transposing=1
}
