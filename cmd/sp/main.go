package main

import "github.com/AnushkaSingh7722/study-planner/cmd/sp/root"

func main() {
	root.Execute()
}
