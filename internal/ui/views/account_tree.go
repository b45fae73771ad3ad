package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/model"
)

// RenderAccountTree shows the chart of accounts as a hierarchy keyed by
// ParentID. Accounts whose parent is not in the fetched set render as
// roots so a filtered list still displays.
func RenderAccountTree(accounts []model.Account) error {
	childrenMap := make(map[string][]model.Account)
	accountIDs := make(map[string]bool)
	var roots []model.Account

	for _, acc := range accounts {
		accountIDs[acc.ID] = true
	}

	for _, acc := range accounts {
		isRoot := acc.ParentID == nil || !accountIDs[*acc.ParentID]
		if isRoot {
			roots = append(roots, acc)
		} else {
			childrenMap[*acc.ParentID] = append(childrenMap[*acc.ParentID], acc)
		}
	}

	var buildNode func(acc model.Account) pterm.TreeNode
	buildNode = func(acc model.Account) pterm.TreeNode {
		displayText := colorByType(acc.Type, fmt.Sprintf("%s %s", acc.Code, acc.Name))
		if !acc.IsPostable {
			displayText += pterm.Gray(" (summary)")
		}

		node := pterm.TreeNode{
			Text: displayText,
		}

		for _, child := range childrenMap[acc.ID] {
			node.Children = append(node.Children, buildNode(child))
		}
		return node
	}

	var treeData []pterm.TreeNode
	for _, root := range roots {
		treeData = append(treeData, buildNode(root))
	}

	pterm.DefaultSection.Println("Chart of Accounts")
	if err := pterm.DefaultTree.WithRoot(pterm.TreeNode{Text: "Accounts", Children: treeData}).Render(); err != nil {
		return err
	}
	pterm.Println()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
