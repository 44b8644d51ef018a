package tensor

// Operation identifies which operation produced a tensor node.
type Operation int

// Operation tags. OpNone marks user-created leaves.
const (
	OpNone Operation = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMatMul
	OpSum
	OpLog
	OpStack
	OpTanh
	OpSigmoid
	OpReLU
	OpLinear
)

// String returns a human-readable operation name.
func (op Operation) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpPow:
		return "pow"
	case OpMatMul:
		return "matmul"
	case OpSum:
		return "sum"
	case OpLog:
		return "log"
	case OpStack:
		return "stack"
	case OpTanh:
		return "tanh"
	case OpSigmoid:
		return "sigmoid"
	case OpReLU:
		return "relu"
	case OpLinear:
		return "linear"
	default:
		return "unknown"
	}
}
