package ring

import (
	"encoding/json"
	"fmt"
)

const (
	discreteGaussianName = "DiscreteGaussian"
	ternaryDistName      = "Ternary"
	uniformDistName      = "Uniform"
)

// DistributionParameters is an interface for distribution parameters in
// the ring. There are three implementations of this interface:
//   - [DiscreteGaussian] for sampling polynomials with discretized
//     Gaussian coefficients of given standard deviation and bound.
//   - [Ternary] for sampling polynomials with coefficients in {-1, 0, 1}.
//   - [Uniform] for sampling polynomials with uniformly random
//     coefficients in the ring.
type DistributionParameters interface {
	Equal(DistributionParameters) bool
	mustBeDist()
}

// DiscreteGaussian represents the parameters of a discrete Gaussian
// distribution with standard deviation Sigma, truncated to
// [-Bound, Bound].
type DiscreteGaussian struct {
	Sigma float64
	Bound float64
}

// Ternary represents the parameters of a distribution with coefficients
// in {-1, 0, 1}. Exactly one of its fields must be set to a non-zero
// value:
//
//   - If P is set, each coefficient is sampled in {-1, 0, 1} with
//     probabilities [0.5*P, 1-P, 0.5*P].
//   - If H is set, the coefficients are sampled uniformly in the set of
//     ternary polynomials with H non-zero coefficients (i.e., of Hamming
//     weight H).
type Ternary struct {
	P float64
	H int
}

// Uniform represents the parameters of a uniform distribution over the
// full coefficient field.
type Uniform struct{}

func (d DiscreteGaussian) Equal(other DistributionParameters) bool {
	switch other := other.(type) {
	case *DiscreteGaussian:
		return d.Sigma == other.Sigma && d.Bound == other.Bound
	default:
		return false
	}
}

func (d DiscreteGaussian) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{"Type": discreteGaussianName, "Sigma": d.Sigma, "Bound": d.Bound})
}

func (d DiscreteGaussian) mustBeDist() {}

func (d Ternary) Equal(other DistributionParameters) bool {
	switch other := other.(type) {
	case *Ternary:
		return d.P == other.P && d.H == other.H
	default:
		return false
	}
}

func (d Ternary) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{"Type": ternaryDistName}
	if d.P != 0 {
		m["P"] = d.P
	}
	if d.H != 0 {
		m["H"] = d.H
	}
	return json.Marshal(m)
}

func (d Ternary) mustBeDist() {}

func (d Uniform) Equal(other DistributionParameters) bool {
	switch other.(type) {
	case *Uniform:
		return true
	default:
		return false
	}
}

func (d Uniform) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{"Type": uniformDistName})
}

func (d Uniform) mustBeDist() {}

func getFloatFromMap(distDef map[string]interface{}, key string) (float64, error) {
	val, hasVal := distDef[key]
	if !hasVal {
		return 0, fmt.Errorf("map specifies no value for %s", key)
	}
	f, isFloat := val.(float64)
	if !isFloat {
		return 0, fmt.Errorf("value for key %s in map should be of type float", key)
	}
	return f, nil
}

func getIntFromMap(distDef map[string]interface{}, key string) (int, error) {
	val, hasVal := distDef[key]
	if !hasVal {
		return 0, fmt.Errorf("map specifies no value for %s", key)
	}
	f, isNumeric := val.(float64)
	if !isNumeric || f != float64(int(f)) {
		return 0, fmt.Errorf("value for key %s in map should be an integer", key)
	}
	return int(f), nil
}

// DistributionParametersFromMap decodes a [DistributionParameters] from
// its generic JSON map representation.
func DistributionParametersFromMap(distDef map[string]interface{}) (DistributionParameters, error) {
	distTypeVal, specified := distDef["Type"]
	if !specified {
		return nil, fmt.Errorf("map specifies no distribution type")
	}
	distTypeStr, isString := distTypeVal.(string)
	if !isString {
		return nil, fmt.Errorf("value for key Type of map should be of type string")
	}
	switch distTypeStr {
	case uniformDistName:
		return &Uniform{}, nil
	case ternaryDistName:
		_, hasP := distDef["P"]
		_, hasH := distDef["H"]

		if !hasP && !hasH {
			return nil, fmt.Errorf("exactly one of the fields P or H must be non-zero")
		}

		var p float64
		var h int
		var err error

		if hasP {
			if p, err = getFloatFromMap(distDef, "P"); err != nil {
				return nil, err
			}
		}

		if hasH {
			if h, err = getIntFromMap(distDef, "H"); err != nil {
				return nil, err
			}
		}

		if p != 0 && h != 0 {
			return nil, fmt.Errorf("exactly one of the fields P or H must be non-zero")
		}

		return &Ternary{P: p, H: h}, nil
	case discreteGaussianName:
		sigma, errSigma := getFloatFromMap(distDef, "Sigma")
		if errSigma != nil {
			return nil, errSigma
		}
		bound, errBound := getFloatFromMap(distDef, "Bound")
		if errBound != nil {
			return nil, errBound
		}
		return &DiscreteGaussian{Sigma: sigma, Bound: bound}, nil
	default:
		return nil, fmt.Errorf("distribution type %s does not exist", distTypeStr)
	}
}
