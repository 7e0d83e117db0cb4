// Command d2dtabu runs the drone-truck combined delivery tabu search over a
// problem instance read from stdin.
package main

func main() {
	Execute()
}
