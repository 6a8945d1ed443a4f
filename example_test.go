package quantgo_test

import (
	"fmt"

	"github.com/hupe1980/quantgo"
)

func ExampleNew() {
	sv, err := quantgo.New(2)
	if err != nil {
		panic(err)
	}

	// Prepare a Bell pair.
	_ = sv.ApplyOperation("Hadamard", []int{0}, false)
	_ = sv.ApplyOperation("CNOT", []int{0, 1}, false)

	for _, a := range sv.Amplitudes() {
		fmt.Printf("%.4f\n", real(a))
	}
	// Output:
	// 0.7071
	// 0.0000
	// 0.0000
	// 0.7071
}

func ExampleStateVector_Measure() {
	sv, err := quantgo.New(2, quantgo.WithSeed(7))
	if err != nil {
		panic(err)
	}

	_ = sv.ApplyOperation("PauliX", []int{0}, false)

	sample, err := sv.Measure(0, quantgo.PostselectIgnore, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(sample)
	// Output: 1
}

func ExampleStateVector_Probs() {
	sv, err := quantgo.New(1)
	if err != nil {
		panic(err)
	}

	_ = sv.ApplyOperation("Hadamard", []int{0}, false)

	probs, err := sv.Probs(0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("p0=%.2f p1=%.2f\n", probs[0], probs[1])
	// Output: p0=0.50 p1=0.50
}
