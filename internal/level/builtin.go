package level

// Builtin returns the levels shipped with the binary.
func Builtin() []Level {
	return []Level{
		{
			ID:     "meadow",
			Name:   "Meadow",
			Source: "builtin",
			Map: Map{
				"1111111111111111111111111111111111111111",
				"1000000000000000000000000000000000000001",
				"1000000000000000000000000000000000000001",
				"1000000000000000000001110000000000000001",
				"1000000000000011100000000000000001110001",
				"1000000011100000000000000011100000000001",
				"1000000000000000000000000000000000000001",
				"1000111000000000001111000000000111100001",
				"1000000000000000000000000000000000000001",
				"1000000000000000000000000000000000000001",
				"10P0000000000000000000000000000000000001",
				"1111111111111111111111111111111111111111",
			},
		},
		{
			ID:     "tower",
			Name:   "Tower",
			Source: "builtin",
			Map: Map{
				"11111111111111111111",
				"10000000000000000001",
				"10000000000001110001",
				"10000111000000000001",
				"10000000000000000001",
				"10000000001110000001",
				"10111000000000000001",
				"10000000000000011101",
				"10000000000000000001",
				"10000011100000000001",
				"10000000000000000001",
				"10000000000001110001",
				"10011100000000000001",
				"10000000000000000001",
				"10000000111000000001",
				"10000000000000000001",
				"10000000000000001101",
				"1P000000000000000001",
				"11111111111111111111",
			},
		},
		{
			ID:     "corridor",
			Name:   "Corridor",
			Source: "builtin",
			Map: Map{
				"111111111111111111111111111111111111111111111111111111111111",
				"000000000000000000000000000000000000000000000000000000000000",
				"000000000000000000000000000000000000000000000000000000000000",
				"000000000000000000000000000000000000000000000000000000000000",
				"000000000000000000000000000000000000000000000000000000000000",
				"P00000000000000000000000000000000000000000000000000000000000",
				"111111111111111111111111111111111111111111111111111111111111",
			},
		},
	}
}
