package query

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Operation is one of the supported summary statistics.
type Operation int

const (
	Sum Operation = iota
	Mean
	Median
	StandardDeviation

	numOperations
)

type aggregateFunc func(values []float64) (float64, error)

// operations is the single dispatch table. Every Operation below
// numOperations must have an entry; init panics otherwise.
var operations = [numOperations]struct {
	name string
	fn   aggregateFunc
}{
	Sum:               {"sum", func(v []float64) (float64, error) { return ComputeSum(v), nil }},
	Mean:              {"mean", ComputeMean},
	Median:            {"median", ComputeMedian},
	StandardDeviation: {"standard deviation", ComputeStandardDeviation},
}

var operationsByName = make(map[string]Operation, numOperations)

func init() {
	for op, entry := range operations {
		if entry.name == "" || entry.fn == nil {
			panic(fmt.Sprintf("query: operation %d is missing from the dispatch table", op))
		}
		operationsByName[entry.name] = Operation(op)
	}
}

// String returns the operation name accepted by ParseOperation.
func (o Operation) String() string {
	if o < 0 || o >= numOperations {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return operations[o].name
}

// Apply computes the statistic over values.
func (o Operation) Apply(values []float64) (float64, error) {
	if o < 0 || o >= numOperations {
		return 0, &UnsupportedOperationError{Name: o.String(), Allowed: OperationNames()}
	}
	return operations[o].fn(values)
}

// OperationNames lists the accepted operation names in declaration order.
func OperationNames() []string {
	names := make([]string, numOperations)
	for i, entry := range operations {
		names[i] = entry.name
	}
	return names
}

// ParseOperation resolves an exact operation name. Unknown names fail with
// an *UnsupportedOperationError; there is no fallback operation.
func ParseOperation(name string) (Operation, error) {
	op, ok := operationsByName[name]
	if !ok {
		return 0, &UnsupportedOperationError{Name: name, Allowed: OperationNames()}
	}
	return op, nil
}

// Aggregate computes the named statistic over values.
func Aggregate(values []float64, name string) (float64, error) {
	op, err := ParseOperation(name)
	if err != nil {
		return 0, err
	}
	return op.Apply(values)
}

// ComputeSum adds values left to right. The sum of no values is 0.
func ComputeSum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// ComputeMean returns the arithmetic mean of values.
func ComputeMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "mean of zero values is undefined")
	}
	return ComputeSum(values) / float64(len(values)), nil
}

// ComputeMedian returns the middle value of the sorted values, or the mean
// of the two middle values for an even count. values is not modified. NaN
// values have no defined position.
func ComputeMedian(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "median of zero values is undefined")
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// ComputeStandardDeviation returns the population standard deviation:
// sqrt((1/n) * Σ(x - mean)²). This divides by n, not n-1.
func ComputeStandardDeviation(values []float64) (float64, error) {
	mean, err := ComputeMean(values)
	if err != nil {
		return 0, errors.Wrap(err, "standard deviation")
	}

	squaredResiduals := 0.0
	for _, v := range values {
		squaredResiduals += (v - mean) * (v - mean)
	}
	return math.Sqrt(squaredResiduals / float64(len(values))), nil
}
