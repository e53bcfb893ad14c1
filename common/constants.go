package common

const (
	BaseWidth  = 768
	BaseHeight = 576
)
