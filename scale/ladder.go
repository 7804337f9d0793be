package scale

import "fmt"

// DisplayTriad returns keyboard indices (0 = the C the ladder keyboard starts on)
// for the close-position triad on degree. The root goes at or above the tonic's
// index; the third and the fifth each take the lowest octave strictly above the
// tone chosen before them.
//
// TODO: vii° to I wraps with a large leap; a nearest-voice choice would read better.
func (d Definition) DisplayTriad(degree int) ([]int, error) {
	if degree < 0 || degree > 6 {
		return nil, fmt.Errorf("%w: degree %d", ErrUnknownScale, degree)
	}
	tonic := d.ContinuousIndices()[0]

	root := d.Classes[degree]
	if root < tonic {
		root += 12
	}
	third := above(d.Classes[(degree+2)%7], root)
	fifth := above(d.Classes[(degree+4)%7], third)
	return []int{root, third, fifth}, nil
}

func above(class, prev int) int {
	for class <= prev {
		class += 12
	}
	return class
}
