package main

import "github.com/dslab-go/dslab/llist"

const listMenuText = `
Enter your Choice:
Press 1 for Insertion
Press 2 for Deletion from Left
Press 3 for Deletion of Last Node
Press 4 for Display
Press 5 to Search in Linked List
Press 6 to Count the No. of Nodes
Press 7 for Reverse Display
Press 0 to EXIT.	`

// listMenu drives a singly linked list through the numbered menu.
func (s *session) listMenu() error {
	l := llist.New()
	for {
		ch, ok := s.readInt(listMenuText)
		if !ok || ch == 0 {
			return nil
		}

		switch ch {
		case 1:
			v, ok := s.readInt("Enter the Value to be Inserted: ")
			if !ok {
				return nil
			}
			l.InsertFront(v)
		case 2:
			v, err := l.DeleteFront()
			if err != nil {
				s.printf("Linked List is Empty\n")

				continue
			}
			s.printf("Value %d has been Deleted\n", v)
		case 3:
			v, err := l.DeleteLast()
			if err != nil {
				s.printf("Linked List is Empty\n")

				continue
			}
			s.printf("Value %d has been Deleted\n", v)
		case 4:
			if l.Count() == 0 {
				s.printf("Linked List is Empty\n")

				continue
			}
			s.printf("%s\n", joinInts(l.Values()))
		case 5:
			key, ok := s.readInt("Input the Element to be Searched: ")
			if !ok {
				return nil
			}
			if l.Search(key) {
				s.printf("Value Successfully Found\n")
			} else {
				s.printf("Value NOT Found\n")
			}
		case 6:
			s.printf("Number of Nodes: %d\n", l.Count())
		case 7:
			if l.Count() == 0 {
				s.printf("Linked List is Empty\n")

				continue
			}
			s.printf("%s\n", joinInts(l.ValuesReverse()))
		}
	}
}
