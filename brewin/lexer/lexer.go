package lexer

import (
	"fmt"

	"github.com/brewin-lang/brewin/brewin/errors"
)

//
// Lexer
//

type Lexer struct {
	currentIndex int
	currentChar  *rune
	nextChar     *rune
	program      []rune
	location     errors.Location
	filename     string
}

func NewLexer(programSource string, filename string) Lexer {
	program := []rune(programSource)
	programLen := len(program)
	var currentChar *rune
	var nextChar *rune

	if programLen == 1 {
		currentChar = &program[0]
	} else if programLen > 1 {
		currentChar = &program[0]
		nextChar = &program[1]
	}

	return Lexer{
		currentIndex: 0,
		currentChar:  currentChar,
		nextChar:     nextChar,
		program:      program,
		location:     errors.NewLocation(),
		filename:     filename,
	}
}

func (self *Lexer) advance() {
	self.location.Advance(self.currentChar != nil && *self.currentChar == '\n')

	self.currentIndex++
	programLen := len(self.program)

	if self.currentIndex >= programLen {
		self.currentChar = nil
	} else {
		self.currentChar = &self.program[self.currentIndex]
	}

	if self.currentIndex+1 >= programLen {
		self.nextChar = nil
	} else {
		self.nextChar = &self.program[self.currentIndex+1]
	}
}

func (self *Lexer) span(start errors.Location, end errors.Location) errors.Span {
	return start.Until(end, self.filename)
}

func (self *Lexer) skipLineComment() {
	for self.currentChar != nil && *self.currentChar != '\n' {
		self.advance()
	}
}

func (self *Lexer) skipBlockComment() *errors.Error {
	start := self.location
	self.advance()
	self.advance()

	for {
		if self.currentChar == nil || self.nextChar == nil {
			return errors.NewSyntaxError(self.span(start, self.location), "Block comment never closed")
		}
		if *self.currentChar == '*' && *self.nextChar == '/' {
			self.advance()
			self.advance()
			return nil
		}
		self.advance()
	}
}

func (self *Lexer) NextToken() (Token, *errors.Error) {
outer:
	for self.currentChar != nil {
		switch *self.currentChar {
		case ' ', '\n', '\t', '\r':
			self.advance()
		case '"':
			return self.makeString()
		case ';':
			return self.makeSingleChar(Semicolon), nil
		case ',':
			return self.makeSingleChar(Comma), nil
		case '(':
			return self.makeSingleChar(LParen), nil
		case ')':
			return self.makeSingleChar(RParen), nil
		case '{':
			return self.makeSingleChar(LCurly), nil
		case '}':
			return self.makeSingleChar(RCurly), nil
		case '+':
			return self.makeSingleChar(Plus), nil
		case '-':
			return self.makeSingleChar(Minus), nil
		case '*':
			return self.makeSingleChar(Multiply), nil
		case '/':
			if self.nextChar != nil {
				switch *self.nextChar {
				case '/':
					self.skipLineComment()
					continue outer
				case '*':
					if err := self.skipBlockComment(); err != nil {
						return UnknownToken(self.location), err
					}
					continue outer
				}
			}
			return self.makeSingleChar(Divide), nil
		case '=':
			return self.makeWithOptionalEquals(Assign, Equal), nil
		case '!':
			return self.makeWithOptionalEquals(Not, NotEqual), nil
		case '<':
			return self.makeWithOptionalEquals(LessThan, LessThanEqual), nil
		case '>':
			return self.makeWithOptionalEquals(GreaterThan, GreaterThanEqual), nil
		case '|':
			return self.makeDouble('|', Or)
		case '&':
			return self.makeDouble('&', And)
		default:
			if IsDigit(*self.currentChar) {
				return self.makeNumber(), nil
			}
			if IsLetter(*self.currentChar) {
				return self.makeName(), nil
			}
			return UnknownToken(self.location), errors.NewSyntaxError(
				self.span(self.location, self.location),
				fmt.Sprintf("Illegal character: %c", *self.currentChar),
			)
		}
	}

	return newToken(EOF, "EOF", self.span(self.location, self.location)), nil
}

func (self *Lexer) makeString() (Token, *errors.Error) {
	startLocation := self.location
	valueBuf := make([]rune, 0)

	// skip opening quote
	self.advance()

	for self.currentChar != nil && *self.currentChar != '"' {
		if *self.currentChar == '\\' {
			char, err := self.makeEscapeSequence()
			if err != nil {
				return UnknownToken(startLocation), err
			}
			valueBuf = append(valueBuf, char)
			continue
		}

		valueBuf = append(valueBuf, *self.currentChar)
		self.advance()
	}

	if self.currentChar == nil {
		return UnknownToken(startLocation), errors.NewSyntaxError(
			self.span(startLocation, self.location),
			"String literal never closed",
		)
	}

	token := newToken(String, string(valueBuf), self.span(startLocation, self.location))

	// skip closing quote
	self.advance()
	return token, nil
}

func (self *Lexer) makeEscapeSequence() (rune, *errors.Error) {
	startLocation := self.location
	self.advance()
	if self.currentChar == nil {
		return ' ', errors.NewSyntaxError(self.span(startLocation, self.location), "Unfinished escape sequence")
	}

	var char rune
	switch *self.currentChar {
	case '\\':
		char = '\\'
	case '"':
		char = '"'
	case 'n':
		char = '\n'
	case 'r':
		char = '\r'
	case 't':
		char = '\t'
	default:
		return ' ', errors.NewSyntaxError(self.span(startLocation, self.location), "Invalid escape sequence")
	}

	self.advance()
	return char, nil
}

func (self *Lexer) makeNumber() Token {
	startLocation := self.location
	endLocation := self.location
	value := make([]rune, 0)

	for self.currentChar != nil && IsDigit(*self.currentChar) {
		value = append(value, *self.currentChar)
		endLocation = self.location
		self.advance()
	}

	return newToken(Int, string(value), self.span(startLocation, endLocation))
}

func (self *Lexer) makeName() Token {
	startLocation := self.location
	endLocation := self.location
	value := make([]rune, 0)

	for self.currentChar != nil && (IsLetter(*self.currentChar) || IsDigit(*self.currentChar)) {
		value = append(value, *self.currentChar)
		endLocation = self.location
		self.advance()
	}

	kind, isKeyword := keywords[string(value)]
	if !isKeyword {
		kind = Identifier
	}

	return newToken(kind, string(value), self.span(startLocation, endLocation))
}

func (self *Lexer) makeSingleChar(kind TokenKind) Token {
	token := newToken(kind, string(*self.currentChar), self.span(self.location, self.location))
	self.advance()
	return token
}

// Produces `withEquals` if the current character is followed by `=`, otherwise `single`.
func (self *Lexer) makeWithOptionalEquals(single TokenKind, withEquals TokenKind) Token {
	startLocation := self.location

	if self.nextChar != nil && *self.nextChar == '=' {
		self.advance()
		token := newToken(withEquals, withEquals.String(), self.span(startLocation, self.location))
		self.advance()
		return token
	}

	return self.makeSingleChar(single)
}

func (self *Lexer) makeDouble(char rune, kind TokenKind) (Token, *errors.Error) {
	startLocation := self.location

	if self.nextChar == nil || *self.nextChar != char {
		return UnknownToken(startLocation), errors.NewSyntaxError(
			self.span(startLocation, startLocation),
			fmt.Sprintf("Illegal character: %c (did you mean '%s'?)", char, kind),
		)
	}

	self.advance()
	token := newToken(kind, kind.String(), self.span(startLocation, self.location))
	self.advance()
	return token, nil
}

//
// Rune range helper functions
//

func IsDigit(char rune) bool { return char >= '0' && char <= '9' }

func IsLetter(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || char == '_'
}
