// Package grid models the fixed-size board of a shortest-path visualizer
// as a matrix of cells that the search package walks as an orthogonal graph.
//
// What:
//
//   - Grid owns Rows×Cols cells in row-major order.
//   - Every Cell carries static attributes (Wall, Role) and search-transient
//     attributes (Distance, Visited, Predecessor) that the search engine owns
//     while a run is in flight.
//   - Exactly one cell holds RoleStart and exactly one holds RoleEnd; neither
//     can ever become a wall (ToggleWall and SetWall are no-ops there).
//   - Neighbors reports the up-to-4 orthogonal neighbors in the fixed order
//     up, down, left, right. Diagonals are never adjacent.
//   - Reachable collects every open cell orthogonally connected to a cell.
//   - Parse / String convert a board to and from a plain text picture:
//
//     ..#...
//     S.#..E
//     ......
//
// Why:
//
//   - Predecessor links are row-major indices, not pointers: a cell never
//     owns another cell, and the lifetime of every link is bounded by the Grid.
//   - Row-major enumeration order is part of the contract: the search engine
//     breaks distance ties by it.
//
// Complexity:
//
//   - New, ResetSearchState, Clear: O(Rows×Cols).
//   - ToggleWall, SetWall, Cell, Neighbors: O(1).
//   - Reachable: O(Rows×Cols), Memory: O(Rows×Cols).
//
// Errors:
//
//   - ErrInvalidConfiguration: non-positive dimensions, more than MaxCells
//     cells, Start == End, or a Start/End outside the board.
//   - ErrOutOfBounds: coordinates outside [0,Rows)×[0,Cols).
//   - ErrMalformedBoard: a text picture that cannot be parsed.
//
// A Grid is not safe for concurrent use. Callers that search concurrently
// must give every search its own Grid.
package grid
