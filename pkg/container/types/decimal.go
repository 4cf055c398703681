// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

// Result precision and scale of decimal arithmetic. Every derived type is
// clamped to MaxDecimalPrecision with scale <= precision.

// minAdjustedScale is the scale kept when a result overflows the maximum
// precision and integer digits are preserved at the cost of fraction digits.
const minAdjustedScale = 6

func clampDecimal(p, s int32) Type {
	if p > MaxDecimalPrecision {
		intDigits := p - s
		s = max32(min32(s, MaxDecimalPrecision-intDigits), min32(s, minAdjustedScale))
		p = MaxDecimalPrecision
	}
	if p < 1 {
		p = 1
	}
	if s > p {
		s = p
	}
	if s < 0 {
		s = 0
	}
	return NewDecimal(p, s)
}

// PlusDecimalType is the result type of l + r and l - r.
func PlusDecimalType(l, r Type) Type {
	s := max32(l.Scale, r.Scale)
	p := s + max32(l.Width-l.Scale, r.Width-r.Scale) + 1
	return clampDecimal(p, s)
}

// TimesDecimalType is the result type of l * r.
func TimesDecimalType(l, r Type) Type {
	return clampDecimal(l.Width+r.Width+1, l.Scale+r.Scale)
}

// DivideDecimalType is the result type of l / r.
func DivideDecimalType(l, r Type) Type {
	s := max32(6, l.Scale+r.Width+1)
	p := (l.Width - l.Scale) + r.Scale + s
	return clampDecimal(p, s)
}

// ModuloDecimalType is the result type of l % r.
func ModuloDecimalType(l, r Type) Type {
	s := max32(l.Scale, r.Scale)
	p := min32(l.Width-l.Scale, r.Width-r.Scale) + s
	return clampDecimal(p, s)
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
