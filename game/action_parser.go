package game

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/beka-birhanu/vinom-painter/game/grid"
)

// literal is an action request as the agent runtime spells it: functor(arg, ...).
type literal struct {
	Functor string   `@Ident`
	Args    []string `( "(" ( @(Ident | Number) ( "," @(Ident | Number) )* )? ")" )?`
}

var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[(),]`},
})

var literalParser = participle.MustBuild[literal](
	participle.Lexer(literalLexer),
	participle.Elide("Whitespace"),
)

// ParseAction converts a literal such as "move_towards(3,3)", "drop(key)" or
// "paint" into an Action.
func ParseAction(s string) (Action, error) {
	lit, err := literalParser.ParseString("", s)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}

	var t ActionType
	for at, name := range actionNames {
		if name == lit.Functor {
			t = at
			break
		}
	}
	if t == 0 {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, lit.Functor)
	}

	switch {
	case t == MoveTowards:
		if len(lit.Args) != 2 {
			return Action{}, fmt.Errorf("%w: %s takes 2 arguments", ErrInvalidAction, t)
		}
		x, errX := strconv.Atoi(lit.Args[0])
		y, errY := strconv.Atoi(lit.Args[1])
		if errX != nil || errY != nil {
			return Action{}, fmt.Errorf("%w: %s needs integer coordinates", ErrInvalidAction, t)
		}
		return Towards(x, y), nil

	case (t == Grab || t == Drop) && len(lit.Args) == 1:
		k, err := grid.ParseKind(lit.Args[0])
		if err != nil || !k.IsTool() {
			return Action{}, fmt.Errorf("%w: %q is not a tool", ErrInvalidAction, lit.Args[0])
		}
		return Action{Type: t, Item: k, HasItem: true}, nil

	case len(lit.Args) != 0:
		return Action{}, fmt.Errorf("%w: %s takes no arguments", ErrInvalidAction, t)
	}

	return Simple(t), nil
}
