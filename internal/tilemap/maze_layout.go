package tilemap

// Legend:
//
//	#  wall
//	.  path with a point token
//	o  path with a weakness token
//	   path without a token (space)
//	<  warp, pairs with the '>' on the same row
//	>  warp, pairs with the '<' on the same row
var defaultMaze = []string{
	"............##............", // 0
	".####.#####.##.#####.####.", // 1
	"o####.#####.##.#####.####o", // 2
	".####.#####.##.#####.####.", // 3
	"..........................", // 4
	".####.##.########.##.####.", // 5
	".####.##.########.##.####.", // 6
	"......##....##....##......", // 7
	"#####.#####.##.#####.#####", // 8
	"#####.#####.##.#####.#####", // 9
	"#####.##..........##.#####", // 10
	"#####.##.########.##.#####", // 11
	"#####.##.########.##.#####", // 12
	"< .......########....... >", // 13
	"#####.##.########.##.#####", // 14
	"#####.##.########.##.#####", // 15
	"#####.##....  ....##.#####", // 16
	"#####.##.########.##.#####", // 17
	"#####.##.########.##.#####", // 18
	"............##............", // 19
	".####.#####.##.##########.", // 20
	".####.#####.##.##########.", // 21
	"o..##................##..o", // 22
	"##.##.##.########.##.##.##", // 23
	"##.##.##.########.##.##.##", // 24
	"......##....##....##......", // 25
	".##########.##.##########.", // 26
	".##########.##.##########.", // 27
	"..........................", // 28
}
