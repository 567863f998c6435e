package parser

import (
	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/lexer"
)

func (self *Parser) statement() (*ast.Element, *errors.Error) {
	switch self.CurrentToken.Kind {
	case lexer.Var:
		return self.varDefinition()
	case lexer.If:
		return self.ifStatement()
	case lexer.For:
		return self.forStatement()
	case lexer.Return:
		return self.returnStatement()
	case lexer.Identifier:
		startLoc := self.CurrentToken.Span.Start
		name := self.CurrentToken.Value
		if err := self.next(); err != nil {
			return nil, err
		}

		var stmt *ast.Element
		var err *errors.Error

		switch self.CurrentToken.Kind {
		case lexer.Assign:
			stmt, err = self.assignment(startLoc, name)
		case lexer.LParen:
			stmt, err = self.callExpression(startLoc, name)
		default:
			return nil, self.expectedOneOfErr([]lexer.TokenKind{lexer.Assign, lexer.LParen})
		}
		if err != nil {
			return nil, err
		}

		if err := self.expectRecoverable(lexer.Semicolon); err != nil {
			return nil, err
		}
		return stmt, nil
	default:
		return nil, self.expectedOneOfErr([]lexer.TokenKind{
			lexer.Var,
			lexer.If,
			lexer.For,
			lexer.Return,
			lexer.Identifier,
		})
	}
}

//
// Variable definition
//

func (self *Parser) varDefinition() (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip the `var` keyword
	if err := self.next(); err != nil {
		return nil, err
	}

	if err := self.expect(lexer.Identifier); err != nil {
		return nil, err
	}

	stmt := ast.NewElement(ast.VarDefNode, startLoc.Until(self.PreviousToken.Span.End, self.Filename))
	stmt.Set(ast.NameKey, self.PreviousToken.Value)

	if err := self.expectRecoverable(lexer.Semicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

//
// Assignment
//

// Expects the current token to be `=`, the target identifier has already been consumed.
func (self *Parser) assignment(start errors.Location, name string) (*ast.Element, *errors.Error) {
	if err := self.expect(lexer.Assign); err != nil {
		return nil, err
	}

	rhs, err := self.expression(0)
	if err != nil {
		return nil, err
	}

	stmt := ast.NewElement(ast.AssignNode, start.Until(self.PreviousToken.Span.End, self.Filename))
	stmt.Set(ast.NameKey, name)
	stmt.Set(ast.ExpressionKey, rhs)
	return stmt, nil
}

// The init and update clauses of a `for` loop.
func (self *Parser) loopClause() (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start
	if err := self.expect(lexer.Identifier); err != nil {
		return nil, err
	}
	return self.assignment(startLoc, self.PreviousToken.Value)
}

//
// If statement
//

func (self *Parser) ifStatement() (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip the `if` keyword
	if err := self.next(); err != nil {
		return nil, err
	}

	if err := self.expect(lexer.LParen); err != nil {
		return nil, err
	}

	condition, err := self.expression(0)
	if err != nil {
		return nil, err
	}

	if err := self.expectRecoverable(lexer.RParen); err != nil {
		return nil, err
	}

	statements, err := self.block()
	if err != nil {
		return nil, err
	}

	stmt := ast.NewElement(ast.IfNode, errors.Span{})
	stmt.Set(ast.ConditionKey, condition)
	stmt.Set(ast.StatementsKey, statements)

	if self.CurrentToken.Kind == lexer.Else {
		if err := self.next(); err != nil {
			return nil, err
		}

		elseStatements, err := self.block()
		if err != nil {
			return nil, err
		}
		stmt.Set(ast.ElseStatementsKey, elseStatements)
	}

	stmt.Range = startLoc.Until(self.PreviousToken.Span.End, self.Filename)
	return stmt, nil
}

//
// For statement
//

func (self *Parser) forStatement() (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip the `for` keyword
	if err := self.next(); err != nil {
		return nil, err
	}

	if err := self.expect(lexer.LParen); err != nil {
		return nil, err
	}

	init, err := self.loopClause()
	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.Semicolon); err != nil {
		return nil, err
	}

	condition, err := self.expression(0)
	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.Semicolon); err != nil {
		return nil, err
	}

	update, err := self.loopClause()
	if err != nil {
		return nil, err
	}

	if err := self.expectRecoverable(lexer.RParen); err != nil {
		return nil, err
	}

	statements, err := self.block()
	if err != nil {
		return nil, err
	}

	stmt := ast.NewElement(ast.ForNode, startLoc.Until(self.PreviousToken.Span.End, self.Filename))
	stmt.Set(ast.InitKey, init)
	stmt.Set(ast.ConditionKey, condition)
	stmt.Set(ast.UpdateKey, update)
	stmt.Set(ast.StatementsKey, statements)
	return stmt, nil
}

//
// Return statement
//

func (self *Parser) returnStatement() (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip the `return` keyword
	if err := self.next(); err != nil {
		return nil, err
	}

	stmt := ast.NewElement(ast.ReturnNode, errors.Span{})

	if self.CurrentToken.Kind != lexer.Semicolon {
		expr, err := self.expression(0)
		if err != nil {
			return nil, err
		}
		stmt.Set(ast.ExpressionKey, expr)
	}

	stmt.Range = startLoc.Until(self.PreviousToken.Span.End, self.Filename)

	if err := self.expectRecoverable(lexer.Semicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}
