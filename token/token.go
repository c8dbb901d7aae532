package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
}

// MatchKeyword returns the keyword token for literal, Keyword for reserved
// words the parser does not support, or Identifier.
func MatchKeyword(literal string) Token {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword
		}
		return k.token
	}
	return Identifier
}

// ID reports whether the token can be used as an identifier name, e.g. as a
// property name after a dot or as an object key.
func ID(token Token) bool {
	return token >= Identifier
}

// IsAssign reports whether the token is an assignment operator.
func IsAssign(token Token) bool {
	return token >= Assign && token <= CoalesceAssign
}

// Contextual reports whether the token is a keyword that is still a valid
// binding identifier outside of its special position.
func Contextual(token Token) bool {
	switch token {
	case Let, Static, Async, Await, Of, Get, Set:
		return true
	}
	return false
}
