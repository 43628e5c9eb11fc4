// Package commands defines the nagaram CLI.
//
// Usage
//
//	nagaram [--sowpods] [-l] [-s chars] [-e chars] <letters>...
//	nagaram -i
//
// "?" in the letters stands for a tile already on the board to play through,
// "_" for a blank tile in the rack (no points). -s and -e give the letters the
// word must start or end with.
//
// # Implementation
//
// The root command builds a dictionary source from --wordlists (or
// NAGARAM_WORDLIST_DIR, else the embedded lists) and searches every letters
// argument concurrently. Reports are printed in argument order.
package commands
