package calculation

import (
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

// MinOperands is the smallest operand list any operation accepts.
const MinOperands = 2

type evalFunc func(inputs []float64) (float64, error)

// operations maps each operation tag to its evaluation function.
// Adding an operation is one entry here.
var operations = map[model.OperationType]evalFunc{
	model.OperationAddition:       add,
	model.OperationSubtraction:    subtract,
	model.OperationMultiplication: multiply,
	model.OperationDivision:       divide,
}

// Compute evaluates the tagged operation over the operands. It is
// pure: same inputs, same result, no I/O and no clock.
func Compute(op model.OperationType, inputs []float64) (float64, error) {
	if len(inputs) < MinOperands {
		return 0, model.ErrInvalidInput
	}

	eval, ok := operations[op]
	if !ok {
		return 0, model.ErrUnknownOperation
	}

	return eval(inputs)
}

func add(inputs []float64) (float64, error) {
	result := inputs[0]
	for _, v := range inputs[1:] {
		result += v
	}
	return result, nil
}

func subtract(inputs []float64) (float64, error) {
	result := inputs[0]
	for _, v := range inputs[1:] {
		result -= v
	}
	return result, nil
}

func multiply(inputs []float64) (float64, error) {
	result := inputs[0]
	for _, v := range inputs[1:] {
		result *= v
	}
	return result, nil
}

func divide(inputs []float64) (float64, error) {
	// every divisor is checked before any division happens
	for _, v := range inputs[1:] {
		if v == 0 {
			return 0, model.ErrDivisionByZero
		}
	}

	result := inputs[0]
	for _, v := range inputs[1:] {
		result /= v
	}
	return result, nil
}
