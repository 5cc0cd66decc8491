package dto

import "fmt"

func field(parent string, index int, name string) string {
	return fmt.Sprintf("%s[%d].%s", parent, index, name)
}
