package samples

func init() {
	Register("bars", `
##########
##########
##########
###....###
..........
..........
###....###
##########
##########
##########
`)
	Register("checker", `
##..
##..
..##
..##
`)
	Register("maze", `
#########
#.......#
#.#####.#
#.#...#.#
#.#.#.#.#
#...#...#
#########
`)
	Register("dots", `
........
.##.....
.##.....
........
.....##.
.....##.
........
........
`)
	Register("rooms", `
################
#......#.......#
#......#.......#
#..............#
#......#.......#
####.#####.#####
#......#.......#
#..............#
#......#.......#
################
`)
}
