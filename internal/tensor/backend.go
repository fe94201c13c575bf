package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations; the
// tensor types only carry data and dispatch.
//
// The operation set is sequence-first: rank-3 (batch, time, channel)
// tensors are the common case, with 1D convolution and pooling over the
// time dimension using TensorFlow SAME-padding semantics.
type Backend interface {
	// Element-wise binary operations (NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar float32) *RawTensor
	MulScalar(x *RawTensor, scalar float32) *RawTensor

	// Matrix multiplication: [M, K] @ [K, N] -> [M, N]
	MatMul(a, b *RawTensor) *RawTensor

	// Sequence operations over (batch, time, channel) tensors.
	//
	// Conv1D applies a stride-1 same-padded convolution with kernel
	// [width, in_channels, out_channels] and optional bias [out_channels]
	// (nil for no bias). Output time dimension equals input time dimension.
	Conv1D(input, kernel, bias *RawTensor) *RawTensor

	// MaxPool1D applies same-padded max pooling over the time dimension.
	// Output time dimension is ceil(time / stride).
	MaxPool1D(input *RawTensor, window, stride int) *RawTensor

	// Math operations (element-wise)
	Abs(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	ReLU(x *RawTensor) *RawTensor
	ELU(x *RawTensor) *RawTensor

	// Reduction operations
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// NotEqualScalar returns a 0/1 float mask: 1 where x != scalar.
	NotEqualScalar(x *RawTensor, scalar float32) *RawTensor

	// Manipulation operations
	Cat(tensors []*RawTensor, dim int) *RawTensor

	// Metadata
	Name() string
}
