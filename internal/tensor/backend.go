package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Every operation validates its operands before allocating, returns a
// freshly allocated result that the caller owns, and never mutates its
// inputs. On failure the result is nil (or 0 for scalars) and the error
// wraps one of the Err* kinds.
//
// Implementations:
//   - backend/cpu: Pure Go
type Backend interface {
	// Element-wise binary operations. Operands must have the same number
	// of elements; axis layout is not compared.
	Add(a, b *Tensor) (*Tensor, error) // Element-wise addition.
	Sub(a, b *Tensor) (*Tensor, error) // Element-wise subtraction.
	Mul(a, b *Tensor) (*Tensor, error) // Element-wise multiplication.
	Div(a, b *Tensor) (*Tensor, error) // Element-wise division.
	Pow(a, b *Tensor) (*Tensor, error) // Element-wise power.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *Tensor, scalar float64) (*Tensor, error) // Add scalar.
	MulScalar(x *Tensor, scalar float64) (*Tensor, error) // Multiply by scalar.

	// Matrix operations.
	MatMul(a, b *Tensor) (*Tensor, error) // Matrix multiplication.
	Transpose(t *Tensor) (*Tensor, error) // 2D transpose.
	Det(t *Tensor) (float64, error)       // Determinant of a square matrix.
	Trace(t *Tensor) (float64, error)     // Sum of the diagonal of a square matrix.

	// Math operations (element-wise).
	Exp(x *Tensor) (*Tensor, error)  // Exponential.
	Log(x *Tensor) (*Tensor, error)  // Natural logarithm.
	Sqrt(x *Tensor) (*Tensor, error) // Square root.
	Sin(x *Tensor) (*Tensor, error)  // Sine.
	Cos(x *Tensor) (*Tensor, error)  // Cosine.
	Tan(x *Tensor) (*Tensor, error)  // Tangent.

	// Activation functions.
	ReLU(x *Tensor) (*Tensor, error)    // max(0, x).
	Sigmoid(x *Tensor) (*Tensor, error) // 1/(1+exp(-x)).
	Tanh(x *Tensor) (*Tensor, error)    // Hyperbolic tangent.
	Softmax(x *Tensor) (*Tensor, error) // Softmax over the flattened tensor.

	// Reduction operations over the flattened tensor.
	Sum(x *Tensor) (float64, error)
	Mean(x *Tensor) (float64, error)
	Std(x *Tensor) (float64, error) // Population standard deviation.
	Var(x *Tensor) (float64, error) // Population variance.
	Min(x *Tensor) (float64, error)
	Max(x *Tensor) (float64, error)

	// Loss functions.
	MSELoss(pred, target *Tensor) (float64, error)
	CrossEntropyLoss(pred, target *Tensor) (float64, error)
	BinaryCrossEntropyLoss(pred, target *Tensor) (float64, error)

	// Shape operations.
	Reshape(t *Tensor, newShape Shape) (*Tensor, error) // Reinterpret under a new shape (copies).
	Slice(t *Tensor, start, end []int) (*Tensor, error) // Extract [start, end) along each axis.

	// Metadata.
	Name() string // Backend name (e.g., "CPU").
}
