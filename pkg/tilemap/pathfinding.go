// pkg/tilemap/pathfinding.go
package tilemap

var neighborOffsets = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ExtractPaths находит по одному кратчайшему пути BFS от каждой клетки старта
// до ближайшей клетки финиша. Проходимы клетки pathTypes, старт и финиш.
// Если стартовых клеток нет, поиск идёт от первой проходимой клетки в порядке строк.
func (g *Grid) ExtractPaths(pathTypes ...Tile) [][]Point {
	walkable := map[Tile]bool{Start: true, End: true}
	for _, t := range pathTypes {
		walkable[t] = true
	}

	starts := g.CellsOfType(Start)
	if len(starts) == 0 {
		if p, ok := g.firstWalkable(walkable); ok {
			starts = []Point{p}
		}
	}

	var paths [][]Point
	for _, start := range starts {
		if path := g.bfs(start, walkable); path != nil {
			paths = append(paths, path)
		}
	}
	return paths
}

func (g *Grid) firstWalkable(walkable map[Tile]bool) (Point, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if walkable[g.cells[y][x]] {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

func (g *Grid) bfs(start Point, walkable map[Tile]bool) []Point {
	queue := []Point{start}
	visited := map[Point]bool{start: true}
	parent := make(map[Point]Point)

	head := 0
	for head < len(queue) {
		current := queue[head]
		head++

		if g.At(current) == End {
			return reconstructPath(parent, start, current)
		}
		for _, d := range neighborOffsets {
			next := Point{X: current.X + d.X, Y: current.Y + d.Y}
			if !g.InBounds(next) || visited[next] || !walkable[g.At(next)] {
				continue
			}
			visited[next] = true
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return nil // Нет пути
}

func reconstructPath(parent map[Point]Point, start, end Point) []Point {
	path := []Point{end}
	for node := end; node != start; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
