package parser

import (
	"fmt"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/lexer"
)

type Parser struct {
	Lexer         lexer.Lexer
	Errors        []errors.Error
	PreviousToken lexer.Token
	CurrentToken  lexer.Token
	Filename      string
}

func NewParser(lex lexer.Lexer, filename string) Parser {
	return Parser{
		Lexer:         lex,
		PreviousToken: lexer.UnknownToken(errors.Location{}),
		CurrentToken:  lexer.UnknownToken(errors.Location{}),
		Errors:        make([]errors.Error, 0),
		Filename:      filename,
	}
}

func (self *Parser) next() *errors.Error {
	token, err := self.Lexer.NextToken()
	if err != nil {
		return err
	}

	self.PreviousToken = self.CurrentToken
	self.CurrentToken = token
	return nil
}

// Parses the entire program.
// Soft errors are problems the parser could recover from, the program is invalid nonetheless.
func (self *Parser) Parse() (program *ast.Element, softErrors []errors.Error, hardError *errors.Error) {
	tree, err := self.program()
	if err != nil {
		return nil, self.Errors, err
	}
	return tree, self.Errors, nil
}

func (self *Parser) program() (*ast.Element, *errors.Error) {
	if err := self.next(); err != nil {
		return nil, err
	}

	startLoc := self.CurrentToken.Span.Start
	functions := make([]*ast.Element, 0)

	for self.CurrentToken.Kind != lexer.EOF {
		if self.CurrentToken.Kind != lexer.Func {
			return nil, self.expectedOneOfErr([]lexer.TokenKind{lexer.Func, lexer.EOF})
		}

		fn, err := self.functionDefinition()
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}

	program := ast.NewElement(ast.ProgramNode, startLoc.Until(self.CurrentToken.Span.End, self.Filename))
	program.Set(ast.FunctionsKey, functions)
	return program, nil
}

func (self *Parser) functionDefinition() (*ast.Element, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip the `func` keyword
	if err := self.next(); err != nil {
		return nil, err
	}

	if err := self.expect(lexer.Identifier); err != nil {
		return nil, err
	}
	name := self.PreviousToken.Value

	if err := self.expect(lexer.LParen); err != nil {
		return nil, err
	}

	params := make([]*ast.Element, 0)
	if self.CurrentToken.Kind == lexer.Identifier {
		param, err := self.parameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		for self.CurrentToken.Kind == lexer.Comma {
			if err := self.next(); err != nil {
				return nil, err
			}

			param, err := self.parameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}

	if err := self.expectRecoverable(lexer.RParen); err != nil {
		return nil, err
	}

	statements, err := self.block()
	if err != nil {
		return nil, err
	}

	fn := ast.NewElement(ast.FuncNode, startLoc.Until(self.PreviousToken.Span.End, self.Filename))
	fn.Set(ast.NameKey, name)
	fn.Set(ast.ArgsKey, params)
	fn.Set(ast.StatementsKey, statements)
	return fn, nil
}

func (self *Parser) parameter() (*ast.Element, *errors.Error) {
	if err := self.expect(lexer.Identifier); err != nil {
		return nil, err
	}

	param := ast.NewElement(ast.ArgNode, self.PreviousToken.Span)
	param.Set(ast.NameKey, self.PreviousToken.Value)
	return param, nil
}

// Parses `{ statement* }`
func (self *Parser) block() ([]*ast.Element, *errors.Error) {
	if err := self.expect(lexer.LCurly); err != nil {
		return nil, err
	}

	statements := make([]*ast.Element, 0)
	for self.CurrentToken.Kind != lexer.RCurly && self.CurrentToken.Kind != lexer.EOF {
		statement, err := self.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}

	if err := self.expect(lexer.RCurly); err != nil {
		return nil, err
	}

	return statements, nil
}

//
// Helper functions
//

func (self *Parser) nonCriticalErr(span errors.Span, message string) {
	self.Errors = append(self.Errors, *errors.NewSyntaxError(span, message))
}

func (self *Parser) expect(expected lexer.TokenKind) *errors.Error {
	if self.CurrentToken.Kind != expected {
		return errors.NewSyntaxError(
			self.CurrentToken.Span,
			fmt.Sprintf("Expected '%s', found '%s'", expected, self.CurrentToken.Kind),
		)
	}

	return self.next()
}

func (self *Parser) expectRecoverable(expected lexer.TokenKind) *errors.Error {
	if self.CurrentToken.Kind != expected {
		self.nonCriticalErr(
			self.CurrentToken.Span,
			fmt.Sprintf("Expected '%s', found '%s'", expected, self.CurrentToken.Kind),
		)
		return nil
	}

	return self.next()
}

func (self Parser) expectedOneOfErr(expected []lexer.TokenKind) *errors.Error {
	message := ""

	if len(expected) == 2 {
		message = fmt.Sprintf("either '%s' or '%s'", expected[0], expected[1])
	} else {
		for idx, expectedItem := range expected {
			if idx == len(expected)-1 {
				message += ", or "
			} else if message != "" {
				message += ", "
			}
			message += fmt.Sprintf("'%s'", expectedItem)
		}
	}

	return errors.NewSyntaxError(
		self.CurrentToken.Span,
		fmt.Sprintf("Expected %s, found '%s'", message, self.CurrentToken.Kind),
	)
}
