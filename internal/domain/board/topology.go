package board

// Index 0 is unused so that squares index directly.
var neighbors = [MaxSquare + 1][]Square{
	1:  {5, 6},
	2:  {6, 7},
	3:  {7, 8},
	4:  {8},
	5:  {1, 9},
	6:  {1, 2, 9, 10},
	7:  {2, 3, 10, 11},
	8:  {3, 4, 11, 12},
	9:  {5, 6, 13, 14},
	10: {6, 7, 14, 15},
	11: {7, 8, 15, 16},
	12: {8, 16},
	13: {9, 17},
	14: {9, 10, 17, 18},
	15: {10, 11, 18, 19},
	16: {11, 12, 19, 20},
	17: {13, 14, 21, 22},
	18: {14, 15, 22, 23},
	19: {15, 16, 23, 24},
	20: {16, 24},
	21: {17, 25},
	22: {17, 18, 25, 26},
	23: {18, 19, 26, 27},
	24: {19, 20, 27, 28},
	25: {21, 22, 29, 30},
	26: {22, 23, 30, 31},
	27: {23, 24, 31, 32},
	28: {24, 32},
	29: {25},
	30: {25, 26},
	31: {26, 27},
	32: {27, 28},
}

var captures = [MaxSquare + 1][]Jump{
	1:  {{6, 10}},
	2:  {{6, 9}, {7, 11}},
	3:  {{7, 10}, {8, 12}},
	4:  {{8, 11}},
	5:  {{9, 14}},
	6:  {{9, 13}, {10, 15}},
	7:  {{10, 14}, {11, 16}},
	8:  {{11, 15}},
	9:  {{6, 2}, {14, 18}},
	10: {{6, 1}, {7, 3}, {14, 17}, {15, 19}},
	11: {{7, 2}, {8, 4}, {15, 18}, {16, 20}},
	12: {{8, 3}, {16, 19}},
	13: {{9, 6}, {17, 22}},
	14: {{9, 5}, {10, 7}, {17, 21}, {18, 23}},
	15: {{10, 6}, {11, 8}, {18, 22}, {19, 24}},
	16: {{11, 7}, {19, 23}},
	17: {{14, 10}, {22, 26}},
	18: {{14, 9}, {15, 11}, {22, 25}, {23, 27}},
	19: {{15, 10}, {16, 12}, {23, 26}, {24, 28}},
	20: {{16, 11}, {24, 27}},
	21: {{17, 14}, {25, 30}},
	22: {{17, 13}, {18, 15}, {25, 29}, {26, 31}},
	23: {{18, 14}, {19, 16}, {26, 30}, {27, 32}},
	24: {{19, 15}, {27, 31}},
	25: {{22, 18}},
	26: {{22, 17}, {23, 19}},
	27: {{23, 18}, {24, 20}},
	28: {{24, 19}},
	29: {{25, 22}},
	30: {{25, 21}, {26, 23}},
	31: {{26, 22}, {27, 24}},
	32: {{27, 23}},
}
