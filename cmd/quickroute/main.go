// Command quickroute answers shortest-path queries against a YAML transit
// network snapshot and benchmarks the algorithm set side by side.
package main

func main() {
	execute()
}
