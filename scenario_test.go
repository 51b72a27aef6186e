package list_test

import (
	"github.com/mgnsk/list"
	. "github.com/mgnsk/list/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func countNodes(head *list.Node[*string]) int {
	cnt := 0
	list.Iterate(head, count, &cnt)
	return cnt
}

var _ = Describe("building a list", func() {
	var (
		head *list.Node[*string]
		p    []*string
		exp  []list.Node[*string]
	)

	BeforeEach(func() {
		head = nil
		p = payloads()
		exp = Chain(p...)
	})

	AfterEach(func() {
		Expect(list.Destroy(&head)).To(Succeed())
		Expect(head).To(BeNil())
	})

	When("values are appended", func() {
		Specify("they are returned by index", func() {
			for _, v := range p {
				Expect(list.Append(&head, v)).To(Succeed())
			}

			for i := range p {
				Expect(list.Get(head, i)).To(BeIdenticalTo(p[i]))
			}
			Expect(list.Get(head, len(p))).To(BeNil())
		})

		Specify("the last index holds the appended value", func() {
			for _, v := range p {
				Expect(list.Append(&head, v)).To(Succeed())
				Expect(list.Get(head, list.Len(head)-1)).To(BeIdenticalTo(v))
			}
		})
	})

	When("the list is empty", func() {
		Specify("inserting after index 0 fails until a node exists", func() {
			Expect(list.InsertAfter(&head, 0, p[0])).To(MatchError(list.ErrIndexOutOfRange))
			Expect(head).To(BeNil())

			Expect(list.Prepend(&head, p[0])).To(Succeed())
			Expect(list.InsertAfter(&head, 0, p[1])).To(Succeed())

			exp[1].Next = nil
			Expect(ChainsEqual(&exp[0], head, StringsEqual)).To(BeTrue())
		})

		Specify("iteration does not call the visitor", func() {
			Expect(countNodes(head)).To(BeZero())
			Expect(list.Len(head)).To(BeZero())
		})
	})

	When("every node is deleted", func() {
		Specify("the head becomes nil", func() {
			for _, v := range p {
				Expect(list.Append(&head, v)).To(Succeed())
			}

			By("deleting the tail")
			Expect(list.Delete(&head, 3)).To(Succeed())
			By("deleting the middle")
			Expect(list.Delete(&head, 1)).To(Succeed())
			By("deleting the head")
			Expect(list.Delete(&head, 0)).To(Succeed())
			Expect(list.Get(head, 0)).To(BeIdenticalTo(p[2]))
			By("deleting the last node")
			Expect(list.Delete(&head, 0)).To(Succeed())

			Expect(head).To(BeNil())
		})
	})

	When("the visitor stops", func() {
		Specify("remaining nodes are not visited", func() {
			for _, v := range p {
				Expect(list.Append(&head, v)).To(Succeed())
			}

			cnt := 0
			list.Iterate(head, stopAt2, &cnt)
			Expect(cnt).To(Equal(2))
		})
	})

	When("set fails", func() {
		Specify("the payloads are unchanged", func() {
			for _, v := range p {
				Expect(list.Append(&head, v)).To(Succeed())
			}

			other := "other"
			Expect(list.Set(head, 4, &other)).To(MatchError(list.ErrIndexOutOfRange))
			Expect(ChainsEqual(&exp[0], head, StringsEqual)).To(BeTrue())
		})
	})
})

var _ = Describe("mixing operations", func() {
	var (
		head *list.Node[*string]
		p    []*string
		exp  []list.Node[*string]
	)

	BeforeEach(func() {
		head = nil
		p = payloads()
		exp = Chain(p...)
	})

	AfterEach(func() {
		Expect(list.Destroy(&head)).To(Succeed())
	})

	Specify("length, get and iteration agree after every step", func() {
		expectState := func(values ...*string) {
			Expect(list.Len(head)).To(Equal(len(values)))
			Expect(countNodes(head)).To(Equal(len(values)))
			for i, v := range values {
				Expect(list.Get(head, i)).To(BeIdenticalTo(v))
			}
			Expect(list.Get(head, len(values))).To(BeNil())
		}

		By("appending to an empty list")
		Expect(list.Append(&head, p[1])).To(Succeed())
		expectState(p[1])

		By("prepending to a single node list")
		Expect(list.Prepend(&head, p[0])).To(Succeed())
		expectState(p[0], p[1])

		By("deleting the head")
		Expect(list.Delete(&head, 0)).To(Succeed())
		expectState(p[1])

		By("changing the head value")
		Expect(list.Set(head, 0, p[0])).To(Succeed())
		expectState(p[0])

		By("appending and inserting")
		Expect(list.Append(&head, p[1])).To(Succeed())
		Expect(list.Append(&head, p[3])).To(Succeed())
		Expect(list.InsertAfter(&head, 1, p[2])).To(Succeed())
		expectState(p...)
		Expect(ChainsEqual(&exp[0], head, StringsEqual)).To(BeTrue())

		By("inserting after the head")
		Expect(list.InsertAfter(&head, 0, p[0])).To(Succeed())
		Expect(list.Len(head)).To(Equal(5))
		Expect(ChainsEqual(&exp[0], head, StringsEqual)).To(BeFalse())

		By("deleting the head again")
		Expect(list.Delete(&head, 0)).To(Succeed())
		expectState(p...)

		By("deleting the tail")
		Expect(list.Delete(&head, 3)).To(Succeed())
		expectState(p[:3]...)

		By("appending and fixing the tail")
		Expect(list.Append(&head, p[0])).To(Succeed())
		expectState(p[0], p[1], p[2], p[0])
		Expect(list.Set(head, 3, p[3])).To(Succeed())
		expectState(p...)

		By("destroying the list")
		Expect(list.Destroy(&head)).To(Succeed())
		expectState()

		By("reusing the head after destroy")
		for _, v := range p {
			Expect(list.Append(&head, v)).To(Succeed())
		}
		expectState(p...)
		Expect(ChainsEqual(&exp[0], head, StringsEqual)).To(BeTrue())
	})
})
