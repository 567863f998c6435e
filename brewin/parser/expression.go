package parser

import (
	"fmt"
	"strconv"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/lexer"
)

//
//	Expression
//

func (self *Parser) expression(prec uint8) (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	var lhs *ast.Element

	switch self.CurrentToken.Kind {
	case lexer.Identifier:
		name := self.CurrentToken.Value
		if err := self.next(); err != nil {
			return nil, err
		}

		if self.CurrentToken.Kind == lexer.LParen {
			call, err := self.callExpression(startLoc, name)
			if err != nil {
				return nil, err
			}
			lhs = call
		} else {
			lhs = ast.NewElement(ast.VarNode, self.PreviousToken.Span)
			lhs.Set(ast.NameKey, name)
		}
	case lexer.LParen:
		grouped, err := self.groupedExpression()
		if err != nil {
			return nil, err
		}
		lhs = grouped
	case lexer.Not, lexer.Minus:
		prefixExpr, err := self.prefixExpression()
		if err != nil {
			return nil, err
		}
		lhs = prefixExpr
	default:
		expr, err := self.literal()
		if err != nil {
			return nil, err
		}
		lhs = expr
	}

	for left, _ := self.CurrentToken.Kind.Prec(); left > prec; left, _ = self.CurrentToken.Kind.Prec() {
		newLhs, err := self.infixExpression(startLoc, lhs)
		if err != nil {
			return nil, err
		}
		lhs = newLhs
	}

	return lhs, nil
}

func (self *Parser) literal() (*ast.Element, *errors.Error) {
	switch self.CurrentToken.Kind {
	case lexer.Int:
		if err := self.next(); err != nil {
			return nil, err
		}

		intRes, err := strconv.ParseInt(self.PreviousToken.Value, 10, 64)
		if err != nil {
			return nil, errors.NewSyntaxError(
				self.PreviousToken.Span,
				fmt.Sprintf("Cannot use '%s' as integer: %s", self.PreviousToken.Value, err),
			)
		}

		node := ast.NewElement(ast.IntNode, self.PreviousToken.Span)
		node.Set(ast.ValKey, intRes)
		return node, nil
	case lexer.String:
		if err := self.next(); err != nil {
			return nil, err
		}
		node := ast.NewElement(ast.StringNode, self.PreviousToken.Span)
		node.Set(ast.ValKey, self.PreviousToken.Value)
		return node, nil
	case lexer.True, lexer.False:
		if err := self.next(); err != nil {
			return nil, err
		}
		node := ast.NewElement(ast.BoolNode, self.PreviousToken.Span)
		node.Set(ast.ValKey, self.PreviousToken.Kind == lexer.True)
		return node, nil
	case lexer.Nil:
		if err := self.next(); err != nil {
			return nil, err
		}
		return ast.NewElement(ast.NilNode, self.PreviousToken.Span), nil
	default:
		return nil, errors.NewSyntaxError(
			self.CurrentToken.Span,
			fmt.Sprintf("Expected an expression, found '%s'", self.CurrentToken.Kind),
		)
	}
}

//
// Grouped expression
//

// Parentheses only affect the shape of the tree, no node is produced for them.
func (self *Parser) groupedExpression() (*ast.Element, *errors.Error) {
	// skip opening `(`
	if err := self.next(); err != nil {
		return nil, err
	}

	inner, err := self.expression(0)
	if err != nil {
		return nil, err
	}

	if err := self.expectRecoverable(lexer.RParen); err != nil {
		return nil, err
	}

	return inner, nil
}

//
// Prefix expression
//

func (self *Parser) prefixExpression() (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	elemType := ast.NotNode
	if self.CurrentToken.Kind == lexer.Minus {
		elemType = ast.NegNode
	}

	if err := self.next(); err != nil {
		return nil, err
	}

	base, err := self.expression(lexer.PrefixPrec)
	if err != nil {
		return nil, err
	}

	node := ast.NewElement(elemType, startLoc.Until(self.PreviousToken.Span.End, self.Filename))
	node.Set(ast.Op1Key, base)
	return node, nil
}

//
// Infix expression
//

func (self *Parser) infixExpression(start errors.Location, lhs *ast.Element) (*ast.Element, *errors.Error) {
	operator := self.CurrentToken.Kind.String()
	_, rhsPrec := self.CurrentToken.Kind.Prec()

	if err := self.next(); err != nil {
		return nil, err
	}

	rhs, err := self.expression(rhsPrec)
	if err != nil {
		return nil, err
	}

	node := ast.NewElement(operator, start.Until(self.PreviousToken.Span.End, self.Filename))
	node.Set(ast.Op1Key, lhs)
	node.Set(ast.Op2Key, rhs)
	return node, nil
}

//
// Call expression
//

// Expects the current token to be `(`, the function name has already been consumed.
func (self *Parser) callExpression(start errors.Location, name string) (*ast.Element, *errors.Error) {
	// skip opening parenthesis
	if err := self.next(); err != nil {
		return nil, err
	}

	args := make([]*ast.Element, 0)
	if self.CurrentToken.Kind != lexer.RParen && self.CurrentToken.Kind != lexer.EOF {
		// make first argument
		expr, err := self.expression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, expr)

		// make remaining arguments
		for self.CurrentToken.Kind == lexer.Comma {
			if err := self.next(); err != nil {
				return nil, err
			}

			expr, err := self.expression(0)
			if err != nil {
				return nil, err
			}
			args = append(args, expr)
		}
	}

	if err := self.expectRecoverable(lexer.RParen); err != nil {
		return nil, err
	}

	node := ast.NewElement(ast.FCallNode, start.Until(self.PreviousToken.Span.End, self.Filename))
	node.Set(ast.NameKey, name)
	node.Set(ast.ArgsKey, args)
	return node, nil
}
