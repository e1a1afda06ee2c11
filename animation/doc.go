// Package animation turns a solve into per-cell ranks for a staggered reveal,
// and holds the reveal clock a renderer advances once per frame.
//
// Rank layout for a maze of N cells:
//
//	0                 never visited
//	N + i             visited at index i, not on the solution path
//	2N + i            on the solution path, visited at index i
//
// Decode(rank, N) splits a rank into its Tier (rank / N) and its reveal delay
// (rank % N). A cell becomes visible once the reveal tick exceeds its delay;
// the tick grows by N/144 per frame so every maze reveals in the same
// wall-clock time as a 16×9 maze revealing one cell per frame.
package animation
