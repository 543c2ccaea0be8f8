package codebook

// Operator arity tables. Reserved for a future expression validator;
// the codec itself does not enforce arity.
var binaryOps = map[byte]bool{
	Add: true, Sub: true, Mul: true, Div: true, Mod: true, Pow: true,
	Min: true, Max: true, DotProduct: true, CrossProduct: true,
	Distance: true, Atan2: true,
	And: true, Or: true, Xor: true, Implies: true, Iff: true,
	Nand: true, Nor: true, Coalesce: true,
	Eq: true, Neq: true, Lt: true, Gt: true, Lte: true, Gte: true,
	Contains: true, Subset: true, Superset: true,
	TBefore: true, TAfter: true, TDuring: true, TSimultaneous: true,
	TStarts: true, TFinishes: true, TOverlaps: true, TMeets: true,
}

var unaryOps = map[byte]bool{
	Not: true, IsNull: true,
	Sqrt: true, Log: true, Log10: true, Log2: true,
	Abs: true, Neg: true, Round: true, Floor: true, Ceil: true, Trunc: true,
	Norm: true, Sin: true, Cos: true,
	Sum: true, Mean: true, Median: true, Stddev: true, Variance: true,
	CountQ:   true,
	TElapsed: true,
}

var ternaryOps = map[byte]bool{
	IfThenElse: true, Clamp: true, Lerp: true, InRange: true,
}

func IsBinaryOp(code byte) bool  { return binaryOps[code] }
func IsUnaryOp(code byte) bool   { return unaryOps[code] }
func IsTernaryOp(code byte) bool { return ternaryOps[code] }
