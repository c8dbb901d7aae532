package token

// Precedence is an operator binding power for Pratt parsing.
//
// Even values are left-associative and odd values right-associative. The
// parser loop breaks on lbp <= min and recurses with lbp ^ 1, so a
// left-associative operator stops at its own level while a right-associative
// one continues.
//
// See: https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html
type Precedence uint8

const (
	PrecedenceLowest            Precedence = 0
	PrecedenceComma             Precedence = 2  // ,
	PrecedenceSpread            Precedence = 4  // ...
	PrecedenceArrow             Precedence = 6  // =>
	PrecedenceAssign            Precedence = 9  // = += -= etc
	PrecedenceConditional       Precedence = 11 // ?:
	PrecedenceNullishCoalescing Precedence = 12 // ??
	PrecedenceLogicalOr         Precedence = 14 // ||
	PrecedenceLogicalAnd        Precedence = 16 // &&
	PrecedenceBitwiseOr         Precedence = 18 // |
	PrecedenceBitwiseXor        Precedence = 20 // ^
	PrecedenceBitwiseAnd        Precedence = 22 // &
	PrecedenceEquals            Precedence = 24 // == != === !==
	PrecedenceCompare           Precedence = 26 // < > <= >= instanceof in
	PrecedenceShift             Precedence = 28 // << >> >>>
	PrecedenceAdd               Precedence = 30 // + -
	PrecedenceMultiply          Precedence = 32 // * / %
	PrecedenceExponentiation    Precedence = 35 // **
	PrecedencePrefix            Precedence = 36 // ! ~ + - typeof void delete await
	PrecedencePostfix           Precedence = 38 // ++ --
	PrecedenceNew               Precedence = 40 // new
	PrecedenceCall              Precedence = 42 // ()
	PrecedenceMember            Precedence = 44 // . []
	PrecedencePrimary           Precedence = 46
)

// tokenPrecedence maps each binary operator to its left binding power.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[Coalesce] = PrecedenceNullishCoalescing
	tokenPrecedence[LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[Or] = PrecedenceBitwiseOr
	tokenPrecedence[ExclusiveOr] = PrecedenceBitwiseXor
	tokenPrecedence[And] = PrecedenceBitwiseAnd
	tokenPrecedence[Equal] = PrecedenceEquals
	tokenPrecedence[StrictEqual] = PrecedenceEquals
	tokenPrecedence[NotEqual] = PrecedenceEquals
	tokenPrecedence[StrictNotEqual] = PrecedenceEquals
	tokenPrecedence[Less] = PrecedenceCompare
	tokenPrecedence[Greater] = PrecedenceCompare
	tokenPrecedence[LessOrEqual] = PrecedenceCompare
	tokenPrecedence[GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[InstanceOf] = PrecedenceCompare
	tokenPrecedence[In] = PrecedenceCompare
	tokenPrecedence[ShiftLeft] = PrecedenceShift
	tokenPrecedence[ShiftRight] = PrecedenceShift
	tokenPrecedence[UnsignedShiftRight] = PrecedenceShift
	tokenPrecedence[Plus] = PrecedenceAdd
	tokenPrecedence[Minus] = PrecedenceAdd
	tokenPrecedence[Multiply] = PrecedenceMultiply
	tokenPrecedence[Slash] = PrecedenceMultiply
	tokenPrecedence[Remainder] = PrecedenceMultiply
	tokenPrecedence[Exponent] = PrecedenceExponentiation
}

// BinaryPrecedence returns the left binding power of a binary operator, or 0
// if the token is not one.
func BinaryPrecedence(t Token) Precedence {
	if t < 0 || int(t) >= len(tokenPrecedence) {
		return 0
	}
	return tokenPrecedence[t]
}

// IsLogical reports whether the token is &&, || or ??.
func IsLogical(t Token) bool {
	return t == LogicalAnd || t == LogicalOr || t == Coalesce
}

// IsRightAssociative reports whether the binding power belongs to a
// right-associative operator.
func (p Precedence) IsRightAssociative() bool {
	return p&1 == 1
}
