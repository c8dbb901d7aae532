package ast

import "github.com/t14raptor/classprops/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Class *ClassLiteral
	}

	VariableDeclaration struct {
		List VariableDeclarators

		Idx   Idx
		Token token.Token // Var, Let or Const
	}

	VariableDeclarators []VariableDeclarator

	// VariableDeclarator is a single binding of a declaration or a
	// parameter list, with an optional initializer (default value).
	VariableDeclarator struct {
		Target      *Identifier
		Initializer *Expression `optional:"true"`
	}
)
