// Package main provides the TinyTorch CLI.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/tinytorch-ml/tinytorch/backend/cpu"
	"github.com/tinytorch-ml/tinytorch/nn"
	"github.com/tinytorch-ml/tinytorch/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("TinyTorch %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("TinyTorch - Reverse-Mode Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run a forward/backward pass through a small MLP")
}

// demo builds a tiny MLP, pushes a batch through it, and prints the
// gradients produced by one backward pass.
func demo() {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(42))

	model := nn.NewMLP(3, []nn.LayerSpec{
		{Neurons: 4, Activation: nn.Tanh},
		{Neurons: 1, Activation: nn.Sigmoid},
	}, rng, backend)
	fmt.Println(model)

	x, err := tensor.New([][]float64{
		{0.5, -0.2, 0.1},
		{-1.0, 0.3, 0.8},
	}, backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}

	out := model.Forward(x)
	fmt.Printf("output: %s data=%v\n", out, out.Data())

	loss := out.Sum()
	loss.Backward()
	fmt.Printf("loss: %.6f\n", loss.Item())

	for _, p := range model.Parameters() {
		fmt.Printf("  %s %s grad=%v\n", p.Label(), p.Shape(), p.Grad().Data())
	}
}
