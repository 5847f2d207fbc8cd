package loglist

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/roadrunner-server/errors"

	"github.com/trickstertwo/loglist/xlog"
)

// exprEnv is what an Expr expression sees of an entry.
type exprEnv struct {
	Name    string
	Level   string         // "TRACE" .. "ERROR"
	Message any            // as logged
	Text    string         // message display text
	Cause   string         // "" when there is no cause
	Fields  map[string]any // later keys win
}

func newExprEnv(e xlog.Entry) exprEnv {
	env := exprEnv{
		Name:    e.Name,
		Level:   e.Level.String(),
		Message: e.Message,
		Text:    e.MessageString(),
		Fields:  xlog.Map(e.Fields),
	}
	if e.Cause != nil {
		env.Cause = e.Cause.Error()
	}
	return env
}

// Expr compiles a boolean expr-lang expression into an entry test, e.g.
//
//	Name == "db" && Text contains "slow" && Fields.ms >= 1000
//
// Runtime errors while evaluating count as no match.
func Expr(code string) (func(xlog.Entry) bool, error) {
	const op = errors.Op("loglist_expr")
	program, err := expr.Compile(code, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, errors.E(op, err)
	}
	return func(e xlog.Entry) bool {
		return runExpr(program, e)
	}, nil
}

// MustExpr is Expr that panics on a compile error.
func MustExpr(code string) func(xlog.Entry) bool {
	fn, err := Expr(code)
	if err != nil {
		panic(err)
	}
	return fn
}

func runExpr(program *vm.Program, e xlog.Entry) bool {
	out, err := expr.Run(program, newExprEnv(e))
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}
