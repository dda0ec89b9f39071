package localdb

import (
	"lnodelist/dao/model"
	"lnodelist/list"
	"sort"
	"sync"
	"time"
)

// LocalDb keeps snapshots in process memory. All LocalDb values share one table.
type LocalDb struct {
	table *table
}

type table struct {
	mu    sync.RWMutex
	lists map[string]model.ListEntity
}

var shared *table
var once sync.Once = sync.Once{}

func createTable() *table {
	once.Do(func() {
		shared = &table{lists: make(map[string]model.ListEntity)}
	})
	return shared
}
func CreateLocalDao() *LocalDb {
	return &LocalDb{
		table: createTable(),
	}
}

// newLocalDb returns a LocalDb with a private table.
func newLocalDb() *LocalDb {
	return &LocalDb{table: &table{lists: make(map[string]model.ListEntity)}}
}

func (l *LocalDb) SaveList(name string, lst *list.List) error {
	if name == "" {
		return model.ErrEmptyName
	}
	entries, err := model.ToEntries(lst)
	if err != nil {
		return err
	}
	l.table.mu.Lock()
	defer l.table.mu.Unlock()
	l.table.lists[name] = model.ListEntity{
		Name:      name,
		Entries:   entries,
		UpdatedAt: time.Now(),
	}
	return nil
}

func (l *LocalDb) LoadList(name string) (*list.List, error) {
	l.table.mu.RLock()
	entity, ok := l.table.lists[name]
	l.table.mu.RUnlock()
	if ok == false {
		return nil, model.ErrNotFound
	}
	return model.FromEntries(entity.Entries)
}

func (l *LocalDb) RemoveList(name string) error {
	l.table.mu.Lock()
	defer l.table.mu.Unlock()
	if _, ok := l.table.lists[name]; ok == false {
		return model.ErrNotFound
	}
	delete(l.table.lists, name)
	return nil
}

func (l *LocalDb) ListNames() ([]string, error) {
	l.table.mu.RLock()
	defer l.table.mu.RUnlock()
	res := make([]string, 0, len(l.table.lists))
	for name := range l.table.lists {
		res = append(res, name)
	}
	sort.Strings(res)
	return res, nil
}
