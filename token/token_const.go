package token

const (
	Undetermined Token = iota

	Skip

	Illegal
	Eof

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??

	// Assignment operators are kept contiguous, see IsAssign.
	Assign                   // =
	AddAssign                // +=
	SubtractAssign           // -=
	MultiplyAssign           // *=
	ExponentAssign           // **=
	QuotientAssign           // /=
	RemainderAssign          // %=
	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=
	LogicalAndAssign         // &&=
	LogicalOrAssign          // ||=
	CoalesceAssign           // ??=

	Increment // ++
	Decrement // --

	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	Not        // !
	BitwiseNot // ~

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	QuestionDot      // ?.
	Arrow            // =>
	Ellipsis         // ...

	PrivateIdentifier

	// Everything from Identifier on may be used as a property name.
	Identifier
	Keyword
	Boolean
	Null

	If
	In
	Of
	Var
	New
	Let
	Get
	Set

	This
	Else
	Void

	Const
	Class
	Super
	Await
	Async

	Return
	Typeof
	Delete
	Static

	Extends

	Function

	InstanceOf
)

var token2string = [...]string{
	Illegal:                  "ILLEGAL",
	Eof:                      "EOF",
	String:                   "STRING",
	Number:                   "NUMBER",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Exponent:                 "**",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	Assign:                   "=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	Less:                     "<",
	Greater:                  ">",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	Not:                      "!",
	BitwiseNot:               "~",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	QuestionDot:              "?.",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	PrivateIdentifier:        "PRIVATE_IDENTIFIER",
	Identifier:               "IDENTIFIER",
	Keyword:                  "KEYWORD",
	Boolean:                  "BOOLEAN",
	Null:                     "null",
	If:                       "if",
	In:                       "in",
	Of:                       "of",
	Var:                      "var",
	New:                      "new",
	Let:                      "let",
	Get:                      "get",
	Set:                      "set",
	This:                     "this",
	Else:                     "else",
	Void:                     "void",
	Const:                    "const",
	Class:                    "class",
	Super:                    "super",
	Await:                    "await",
	Async:                    "async",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Static:                   "static",
	Extends:                  "extends",
	Function:                 "function",
	InstanceOf:               "instanceof",
}

var keywordTable = map[string]keyword{
	"if":         {token: If},
	"in":         {token: In},
	"of":         {token: Of},
	"var":        {token: Var},
	"new":        {token: New},
	"let":        {token: Let},
	"get":        {token: Get},
	"set":        {token: Set},
	"this":       {token: This},
	"else":       {token: Else},
	"void":       {token: Void},
	"const":      {token: Const},
	"class":      {token: Class},
	"super":      {token: Super},
	"await":      {token: Await},
	"async":      {token: Async},
	"return":     {token: Return},
	"typeof":     {token: Typeof},
	"delete":     {token: Delete},
	"static":     {token: Static},
	"extends":    {token: Extends},
	"function":   {token: Function},
	"instanceof": {token: InstanceOf},
	"true":       {token: Boolean},
	"false":      {token: Boolean},
	"null":       {token: Null},

	// Reserved words outside the supported statement set.
	"do":         {futureKeyword: true},
	"for":        {futureKeyword: true},
	"try":        {futureKeyword: true},
	"case":       {futureKeyword: true},
	"with":       {futureKeyword: true},
	"break":      {futureKeyword: true},
	"catch":      {futureKeyword: true},
	"throw":      {futureKeyword: true},
	"while":      {futureKeyword: true},
	"yield":      {futureKeyword: true},
	"enum":       {futureKeyword: true},
	"export":     {futureKeyword: true},
	"import":     {futureKeyword: true},
	"switch":     {futureKeyword: true},
	"default":    {futureKeyword: true},
	"finally":    {futureKeyword: true},
	"continue":   {futureKeyword: true},
	"debugger":   {futureKeyword: true},
}
