// Package graph implements instrumented breadth-first and depth-first
// traversal over small string-labelled graphs.
//
// Vertices and adjacency lists are kept sorted, so traversal order and the
// recorded history are fully determined by the input edges.
package graph
