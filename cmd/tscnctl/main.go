// Command tscnctl inspects, checks and reformats text scene files.
package main

func main() {
	execute()
}
