package game

// DefaultBoard returns the built-in Brazil map: 16 cities, 30 routes and
// the standard ticket set. Route lengths and colors are tuned so every
// card color appears and gray routes exist at every length band.
func DefaultBoard() *Board {
	b, err := NewBoard(brazilCities, brazilRoutes)
	if err != nil {
		// Static data; a failure here is a programming error.
		panic("default board: " + err.Error())
	}
	return b
}

// DefaultTickets returns the destination tickets for the built-in map.
func DefaultTickets() []Ticket {
	tickets := make([]Ticket, len(brazilTickets))
	copy(tickets, brazilTickets)
	return tickets
}

var brazilCities = []City{
	{ID: "mao", Name: "Manaus"},
	{ID: "bel", Name: "Belém"},
	{ID: "for", Name: "Fortaleza"},
	{ID: "rec", Name: "Recife"},
	{ID: "sal", Name: "Salvador"},
	{ID: "bsb", Name: "Brasília"},
	{ID: "gyn", Name: "Goiânia"},
	{ID: "cgb", Name: "Cuiabá"},
	{ID: "pvh", Name: "Porto Velho"},
	{ID: "bhz", Name: "Belo Horizonte"},
	{ID: "rio", Name: "Rio de Janeiro"},
	{ID: "sao", Name: "São Paulo"},
	{ID: "cwb", Name: "Curitiba"},
	{ID: "fln", Name: "Florianópolis"},
	{ID: "poa", Name: "Porto Alegre"},
	{ID: "cgr", Name: "Campo Grande"},
}

var brazilRoutes = []*Route{
	{ID: "r01", CityA: "mao", CityB: "bel", Color: ColorGreen, Length: 5},
	{ID: "r02", CityA: "mao", CityB: "pvh", Color: ColorAny, Length: 3},
	{ID: "r03", CityA: "mao", CityB: "cgb", Color: ColorBlack, Length: 6},
	{ID: "r04", CityA: "bel", CityB: "for", Color: ColorYellow, Length: 4},
	{ID: "r05", CityA: "bel", CityB: "bsb", Color: ColorRed, Length: 6},
	{ID: "r06", CityA: "for", CityB: "rec", Color: ColorBlue, Length: 2},
	{ID: "r07", CityA: "rec", CityB: "sal", Color: ColorOrange, Length: 2},
	{ID: "r08", CityA: "for", CityB: "bsb", Color: ColorAny, Length: 5},
	{ID: "r09", CityA: "sal", CityB: "bsb", Color: ColorPurple, Length: 4},
	{ID: "r10", CityA: "sal", CityB: "bhz", Color: ColorWhite, Length: 4},
	{ID: "r11", CityA: "bsb", CityB: "bhz", Color: ColorGreen, Length: 2},
	{ID: "r12", CityA: "bsb", CityB: "gyn", Color: ColorAny, Length: 1},
	{ID: "r13", CityA: "gyn", CityB: "cgb", Color: ColorBlue, Length: 3},
	{ID: "r14", CityA: "cgb", CityB: "pvh", Color: ColorAny, Length: 4},
	{ID: "r15", CityA: "cgb", CityB: "cgr", Color: ColorYellow, Length: 2},
	{ID: "r16", CityA: "gyn", CityB: "cgr", Color: ColorAny, Length: 3},
	{ID: "r17", CityA: "bhz", CityB: "rio", Color: ColorOrange, Length: 2},
	{ID: "r18", CityA: "bhz", CityB: "sao", Color: ColorBlack, Length: 3},
	{ID: "r19", CityA: "rio", CityB: "sao", Color: ColorAny, Length: 2},
	{ID: "r20", CityA: "sao", CityB: "cwb", Color: ColorRed, Length: 2},
	{ID: "r21", CityA: "sao", CityB: "cgr", Color: ColorWhite, Length: 4},
	{ID: "r22", CityA: "cwb", CityB: "fln", Color: ColorAny, Length: 1},
	{ID: "r23", CityA: "fln", CityB: "poa", Color: ColorPurple, Length: 2},
	{ID: "r24", CityA: "cwb", CityB: "poa", Color: ColorGreen, Length: 3},
	{ID: "r25", CityA: "cwb", CityB: "cgr", Color: ColorAny, Length: 3},
	{ID: "r26", CityA: "poa", CityB: "cgr", Color: ColorBlue, Length: 5},
	{ID: "r27", CityA: "gyn", CityB: "sao", Color: ColorAny, Length: 4},
	{ID: "r28", CityA: "bsb", CityB: "cgb", Color: ColorOrange, Length: 5},
	{ID: "r29", CityA: "for", CityB: "sal", Color: ColorAny, Length: 4},
	{ID: "r30", CityA: "bel", CityB: "mao", Color: ColorWhite, Length: 5},
}

var brazilTickets = []Ticket{
	{ID: "t01", Origin: "mao", Destination: "rio", Points: 17},
	{ID: "t02", Origin: "mao", Destination: "sal", Points: 15},
	{ID: "t03", Origin: "bel", Destination: "sao", Points: 13},
	{ID: "t04", Origin: "bel", Destination: "poa", Points: 18},
	{ID: "t05", Origin: "for", Destination: "bhz", Points: 10},
	{ID: "t06", Origin: "for", Destination: "cgb", Points: 14},
	{ID: "t07", Origin: "rec", Destination: "rio", Points: 11},
	{ID: "t08", Origin: "rec", Destination: "bsb", Points: 9},
	{ID: "t09", Origin: "sal", Destination: "sao", Points: 8},
	{ID: "t10", Origin: "sal", Destination: "poa", Points: 14},
	{ID: "t11", Origin: "bsb", Destination: "poa", Points: 10},
	{ID: "t12", Origin: "bsb", Destination: "pvh", Points: 12},
	{ID: "t13", Origin: "gyn", Destination: "rio", Points: 7},
	{ID: "t14", Origin: "cgb", Destination: "sao", Points: 8},
	{ID: "t15", Origin: "pvh", Destination: "cgr", Points: 9},
	{ID: "t16", Origin: "bhz", Destination: "fln", Points: 7},
	{ID: "t17", Origin: "rio", Destination: "poa", Points: 8},
	{ID: "t18", Origin: "sao", Destination: "poa", Points: 6},
	{ID: "t19", Origin: "mao", Destination: "for", Points: 12},
	{ID: "t20", Origin: "cwb", Destination: "bsb", Points: 8},
}
