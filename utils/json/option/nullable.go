package option

import "strconv"

// ================================ NullableBool ================================

// NullableBool is a nullable version of a bool.
type NullableBool = *NullableBoolData

type NullableBoolData struct {
	Val  bool
	Init bool
}

// NullBool serializes to JSON null.
var NullBool = &NullableBoolData{}

// NewNullableBool creates a new non-null NullableBool using the value of the
// passed bool.
func NewNullableBool(v bool) NullableBool {
	return &NullableBoolData{
		Val:  v,
		Init: true,
	}
}

func (b NullableBoolData) MarshalJSON() ([]byte, error) {
	if !b.Init {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatBool(b.Val)), nil
}

func (b *NullableBoolData) UnmarshalJSON(v []byte) error {
	s := string(v)

	if s == "null" {
		*b = NullableBoolData{}
		return nil
	}

	val, err := strconv.ParseBool(s)

	b.Val = val
	b.Init = true

	return err
}

// ================================ NullableUint ================================

// NullableUint is a nullable version of an unsigned integer (uint).
type NullableUint = *NullableUintData

type NullableUintData struct {
	Val  uint
	Init bool
}

// NullUint serializes to JSON null.
var NullUint = &NullableUintData{}

// NewNullableUint creates a new non-null NullableUint using the value of the
// passed uint.
func NewNullableUint(v uint) NullableUint {
	return &NullableUintData{
		Val:  v,
		Init: true,
	}
}

func (u NullableUintData) MarshalJSON() ([]byte, error) {
	if !u.Init {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(uint64(u.Val), 10)), nil
}

func (u *NullableUintData) UnmarshalJSON(v []byte) error {
	s := string(v)

	if s == "null" {
		*u = NullableUintData{}
		return nil
	}

	val, err := strconv.ParseUint(s, 10, 64)

	u.Val = uint(val)
	u.Init = true

	return err
}

// ================================ NullableInt ================================

// NullableInt is a nullable version of an integer (int).
type NullableInt = *NullableIntData

type NullableIntData struct {
	Val  int
	Init bool
}

// NullInt serializes to JSON null.
var NullInt = &NullableIntData{}

// NewNullableInt creates a new non-null NullableInt using the value of the
// passed int.
func NewNullableInt(v int) NullableInt {
	return &NullableIntData{
		Val:  v,
		Init: true,
	}
}

func (i NullableIntData) MarshalJSON() ([]byte, error) {
	if !i.Init {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(int64(i.Val), 10)), nil
}

func (i *NullableIntData) UnmarshalJSON(v []byte) error {
	s := string(v)

	if s == "null" {
		*i = NullableIntData{}
		return nil
	}

	val, err := strconv.ParseInt(s, 10, 64)

	i.Val = int(val)
	i.Init = true

	return err
}
