package main

import "auto_blog_generator/cmd"

func main() {
	cmd.Execute()
}
