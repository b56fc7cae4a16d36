/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

var defaultLevel = []string{
	"111111111111111111111111",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000222220000303030001",
	"100000200020000000000001",
	"100000200020000300030001",
	"100000200020000000000001",
	"100000220220000303030001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"144444444000000000000001",
	"140400004000000000000001",
	"140000504000000000000001",
	"140400004000000000000001",
	"140444444000000000000001",
	"140000000000000000000001",
	"144444444000000000000001",
	"111111111111111111111111",
}

// Default returns the built-in 24x24 level.
func Default() *Map {
	m, err := Parse(defaultLevel)
	if err != nil {
		panic(err)
	}
	return m
}
