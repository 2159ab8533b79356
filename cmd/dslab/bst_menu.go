package main

import "github.com/dslab-go/dslab/bst"

const bstMenuText = `
Enter your Choice:
Press 1 for Insertion
Press 2 for Deletion
Press 3 for Inorder Display
Press 4 for Preorder Display
Press 5 for Postorder Display
Press 6 to Count the No. of Nodes
Press 7 to Search for a Value
Press 8 to Count Nodes with One Child
Press 9 to Count Nodes with Two Children
Press 0 to EXIT.	`

// bstMenu drives a binary search tree through the numbered menu.
func (s *session) bstMenu() error {
	t := bst.New()
	for {
		ch, ok := s.readInt(bstMenuText)
		if !ok || ch == 0 {
			return nil
		}

		switch ch {
		case 1:
			v, ok := s.readInt("Enter the Value to be Inserted: ")
			if !ok {
				return nil
			}
			t.Insert(v)
		case 2:
			key, ok := s.readInt("Enter the Value to be Deleted: ")
			if !ok {
				return nil
			}
			if err := t.Delete(key); err != nil {
				s.printf("NODE NOT FOUND\n")

				continue
			}
			s.printf("Value %d has been Deleted\n", key)
		case 3:
			s.printf("%s\n", joinInts(t.InOrder()))
		case 4:
			s.printf("%s\n", joinInts(t.PreOrder()))
		case 5:
			s.printf("%s\n", joinInts(t.PostOrder()))
		case 6:
			s.printf("Number of Nodes: %d\n", t.Count())
		case 7:
			key, ok := s.readInt("Input the Element to be Searched: ")
			if !ok {
				return nil
			}
			if t.Search(key) {
				s.printf("Value Successfully Found\n")
			} else {
				s.printf("Value NOT Found\n")
			}
		case 8:
			s.printf("Nodes with One Child: %d\n", t.CountOneChild())
		case 9:
			s.printf("Nodes with Two Children: %d\n", t.CountTwoChildren())
		}
	}
}
