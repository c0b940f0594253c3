package builder_test

// facilityCase pairs a direction string with its finished map and the number
// of doors on the longest shortest path.
type facilityCase struct {
	name     string
	input    string
	render   string
	furthest int
}

// facilityCases are the worked examples of the regular-map puzzle.
var facilityCases = []facilityCase{
	{
		name:  "Linear",
		input: "^WNE$",
		render: "#####\n" +
			"#.|.#\n" +
			"#-###\n" +
			"#.|X#\n" +
			"#####",
		furthest: 3,
	},
	{
		name:  "NestedBranches",
		input: "^ENWWW(NEEE|SSE(EE|N))$",
		render: "#########\n" +
			"#.|.|.|.#\n" +
			"#-#######\n" +
			"#.|.|.|.#\n" +
			"#-#####-#\n" +
			"#.#.#X|.#\n" +
			"#-#-#####\n" +
			"#.|.|.|.#\n" +
			"#########",
		furthest: 10,
	},
	{
		name:  "EmptyAlternatives",
		input: "^ENNWSWW(NEWS|)SSSEEN(WNSE|)EE(SWEN|)NNN$",
		render: "###########\n" +
			"#.|.#.|.#.#\n" +
			"#-###-#-#-#\n" +
			"#.|.|.#.#.#\n" +
			"#-#####-#-#\n" +
			"#.#.#X|.#.#\n" +
			"#-#-#####-#\n" +
			"#.#.|.|.|.#\n" +
			"#-###-###-#\n" +
			"#.|.|.#.|.#\n" +
			"###########",
		furthest: 18,
	},
	{
		name:  "DeepNesting",
		input: "^ESSWWN(E|NNENN(EESS(WNSE|)SSS|WWWSSSSE(SW|NNNE)))$",
		render: "#############\n" +
			"#.|.|.|.|.|.#\n" +
			"#-#####-###-#\n" +
			"#.#.|.#.#.#.#\n" +
			"#-#-###-#-#-#\n" +
			"#.#.#.|.#.|.#\n" +
			"#-#-#-#####-#\n" +
			"#.#.#.#X|.#.#\n" +
			"#-#-#-###-#-#\n" +
			"#.|.#.|.#.#.#\n" +
			"###-#-###-#-#\n" +
			"#.|.#.|.|.#.#\n" +
			"#############",
		furthest: 23,
	},
	{
		name:  "WideFacility",
		input: "^WSSEESWWWNW(S|NENNEEEENN(ESSSSW(NWSW|SSEN)|WSWWN(E|WWS(E|SS))))$",
		render: "###############\n" +
			"#.|.|.|.#.|.|.#\n" +
			"#-###-###-#-#-#\n" +
			"#.|.#.|.|.#.#.#\n" +
			"#-#########-#-#\n" +
			"#.#.|.|.|.|.#.#\n" +
			"#-#-#########-#\n" +
			"#.#.#.|X#.|.#.#\n" +
			"###-#-###-#-#-#\n" +
			"#.|.#.#.|.#.|.#\n" +
			"#-###-#####-###\n" +
			"#.|.#.|.|.#.#.#\n" +
			"#-#-#####-#-#-#\n" +
			"#.#.|.|.|.#.|.#\n" +
			"###############",
		furthest: 31,
	},
}
