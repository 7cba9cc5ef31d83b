package host

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/pazhonic/panel-manager/internal/model"
)

type actionReply struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id"`
	Error   string `json:"error"`
}

type panelsReply struct {
	Panels []model.Panel `json:"panels"`
	Error  string        `json:"error"`
}

type foldersReply struct {
	Folders []model.Folder `json:"folders"`
	Error   string         `json:"error"`
}

func loggedInHost(t *testing.T) *Service {
	t.Helper()
	s := openTestHost(t)
	register(t, s, "ali", "09120000001", "secret")
	login(t, s, "09120000001", "secret")
	return s
}

func mustAction(t *testing.T, raw string) actionReply {
	t.Helper()
	var res actionReply
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("Malformed action reply %q: %v", raw, err)
	}
	return res
}

func mustPanels(t *testing.T, raw string) panelsReply {
	t.Helper()
	var res panelsReply
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("Malformed panels reply %q: %v", raw, err)
	}
	return res
}

func createTestPanel(t *testing.T, s *Service, name string) uint {
	t.Helper()
	res := mustAction(t, s.CreatePanel(fmt.Sprintf(`{"name":%q,"serialNumber":"SN-%s"}`, name, name)))
	if !res.Success || res.ID == 0 {
		t.Fatalf("Failed to create panel %s: %+v", name, res)
	}
	return res.ID
}

func TestPanelCRUDRequiresSession(t *testing.T) {
	s := openTestHost(t)

	if res := mustAction(t, s.CreatePanel(`{"name":"Shop"}`)); res.Success {
		t.Error("Expected create to fail without a session")
	}
	panels := mustPanels(t, s.GetPanelsForUser())
	if panels.Error == "" {
		t.Error("Expected panel listing to fail without a session")
	}
}

func TestCreatePanel(t *testing.T) {
	s := loggedInHost(t)

	// Name is required
	if res := mustAction(t, s.CreatePanel(`{"name":"  "}`)); res.Success {
		t.Error("Expected create with blank name to fail")
	}

	id := createTestPanel(t, s, "Shop")

	panels := mustPanels(t, s.GetPanelsForUser())
	if len(panels.Panels) != 1 {
		t.Fatalf("Expected 1 panel, got %d", len(panels.Panels))
	}
	p := panels.Panels[0]
	if p.ID != id || p.Name != "Shop" {
		t.Errorf("Unexpected panel %+v", p)
	}
	if p.Icon != model.DefaultIcon {
		t.Errorf("Expected default icon, got %s", p.Icon)
	}
	if p.LastStatus != nil {
		t.Error("New panel must not have a last status")
	}
}

func TestPanelListOrder(t *testing.T) {
	s := loggedInHost(t)

	createTestPanel(t, s, "Alpha")
	createTestPanel(t, s, "Bravo")
	createTestPanel(t, s, "Charlie")

	panels := mustPanels(t, s.GetPanelsForUser())
	names := []string{}
	for _, p := range panels.Panels {
		names = append(names, p.Name)
	}
	expected := []string{"Alpha", "Bravo", "Charlie"}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected insertion order %v, got %v", expected, names)
			break
		}
	}
}

func TestUpdatePanelPreservesStatus(t *testing.T) {
	s := loggedInHost(t)
	id := createTestPanel(t, s, "Shop")

	if res := mustAction(t, s.SetPanelLastStatus(fmt.Sprint(id), "ARM")); !res.Success {
		t.Fatalf("Failed to set status: %+v", res)
	}

	// An edit submits the full record; lastStatus is not user-editable and
	// arrives as null. The stored status must survive.
	out := s.UpdatePanel(fmt.Sprintf(`{"id":%d,"name":"Shop renamed","ip":"10.0.0.9","lastStatus":null}`, id))
	if res := mustAction(t, out); !res.Success {
		t.Fatalf("Update failed: %+v", res)
	}

	panels := mustPanels(t, s.GetPanelsForUser())
	p := panels.Panels[0]
	if p.Name != "Shop renamed" || p.IP != "10.0.0.9" {
		t.Errorf("Edit not applied: %+v", p)
	}
	if p.LastStatus == nil || *p.LastStatus != model.StatusArm {
		t.Error("Update clobbered lastStatus")
	}
}

func TestDeletePanel(t *testing.T) {
	s := loggedInHost(t)
	id := createTestPanel(t, s, "Shop")

	if res := mustAction(t, s.DeletePanel("9999")); res.Success {
		t.Error("Expected delete of unknown panel to fail")
	}

	if res := mustAction(t, s.DeletePanel(fmt.Sprint(id))); !res.Success {
		t.Fatalf("Delete failed: %+v", res)
	}
	panels := mustPanels(t, s.GetPanelsForUser())
	if len(panels.Panels) != 0 {
		t.Errorf("Expected empty list after delete, got %d", len(panels.Panels))
	}
}

func TestSetPanelFolderAndListByFolder(t *testing.T) {
	s := loggedInHost(t)
	shop := createTestPanel(t, s, "Shop")
	warehouse := createTestPanel(t, s, "Warehouse")

	folderRes := mustAction(t, s.CreateFolder("Branches"))
	if !folderRes.Success {
		t.Fatalf("Failed to create folder: %+v", folderRes)
	}

	if res := mustAction(t, s.SetPanelFolder(fmt.Sprint(warehouse), fmt.Sprint(folderRes.ID))); !res.Success {
		t.Fatalf("Failed to set folder: %+v", res)
	}

	// Unknown folder is rejected
	if res := mustAction(t, s.SetPanelFolder(fmt.Sprint(shop), "777")); res.Success {
		t.Error("Expected assignment to unknown folder to fail")
	}

	uncategorized := mustPanels(t, s.GetPanelsByFolder("null"))
	if len(uncategorized.Panels) != 1 || uncategorized.Panels[0].ID != shop {
		t.Errorf("Expected only Shop uncategorized, got %+v", uncategorized.Panels)
	}

	inFolder := mustPanels(t, s.GetPanelsByFolder(fmt.Sprint(folderRes.ID)))
	if len(inFolder.Panels) != 1 || inFolder.Panels[0].ID != warehouse {
		t.Errorf("Expected only Warehouse in folder, got %+v", inFolder.Panels)
	}

	// Clearing with "" moves the panel back to uncategorized
	if res := mustAction(t, s.SetPanelFolder(fmt.Sprint(warehouse), "")); !res.Success {
		t.Fatalf("Failed to clear folder: %+v", res)
	}
	uncategorized = mustPanels(t, s.GetPanelsByFolder("null"))
	if len(uncategorized.Panels) != 2 {
		t.Errorf("Expected both panels uncategorized, got %d", len(uncategorized.Panels))
	}
}

func TestDeleteFolderReassignsPanels(t *testing.T) {
	s := loggedInHost(t)
	warehouse := createTestPanel(t, s, "Warehouse")

	folderRes := mustAction(t, s.CreateFolder("Branches"))
	if !folderRes.Success {
		t.Fatalf("Failed to create folder: %+v", folderRes)
	}
	if res := mustAction(t, s.SetPanelFolder(fmt.Sprint(warehouse), fmt.Sprint(folderRes.ID))); !res.Success {
		t.Fatalf("Failed to set folder: %+v", res)
	}

	if res := mustAction(t, s.DeleteFolder(fmt.Sprint(folderRes.ID))); !res.Success {
		t.Fatalf("Failed to delete folder: %+v", res)
	}

	// The panel survives and is uncategorized after the folder is gone
	panels := mustPanels(t, s.GetPanelsForUser())
	if len(panels.Panels) != 1 {
		t.Fatalf("Expected panel to survive folder deletion, got %d", len(panels.Panels))
	}
	if panels.Panels[0].FolderID != nil {
		t.Error("Expected panel to be uncategorized after folder deletion")
	}

	var folders foldersReply
	if err := json.Unmarshal([]byte(s.GetFolders()), &folders); err != nil {
		t.Fatalf("Malformed folders reply: %v", err)
	}
	if len(folders.Folders) != 0 {
		t.Errorf("Expected no folders left, got %d", len(folders.Folders))
	}
}

func TestFolderSortOrder(t *testing.T) {
	s := loggedInHost(t)

	mustAction(t, s.CreateFolder("First"))
	mustAction(t, s.CreateFolder("Second"))

	var folders foldersReply
	if err := json.Unmarshal([]byte(s.GetFolders()), &folders); err != nil {
		t.Fatalf("Malformed folders reply: %v", err)
	}
	if len(folders.Folders) != 2 {
		t.Fatalf("Expected 2 folders, got %d", len(folders.Folders))
	}
	if folders.Folders[0].Name != "First" || folders.Folders[1].Name != "Second" {
		t.Errorf("Unexpected folder order: %+v", folders.Folders)
	}
	if folders.Folders[1].SortOrder <= folders.Folders[0].SortOrder {
		t.Error("Expected increasing sort order")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	s := loggedInHost(t)
	createTestPanel(t, s, "Mine")

	register(t, s, "sara", "09120000002", "secret2")
	login(t, s, "09120000002", "secret2")

	panels := mustPanels(t, s.GetPanelsForUser())
	if len(panels.Panels) != 0 {
		t.Errorf("Expected second user to see no panels, got %d", len(panels.Panels))
	}
}
