// README: Entry point; hands off to the cobra command tree.
package main

func main() {
	Execute()
}
