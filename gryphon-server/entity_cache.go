// This file contains code controlling the entity cache.

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"
	"unsafe"
)

type EntityCache struct {
	sync.Mutex
	cache         map[GUID]cacheEntry
	totalMemUsage int
}

func NewEntityCache() EntityCache {
	return EntityCache{
		Mutex:         sync.Mutex{},
		cache:         make(map[GUID]cacheEntry),
		totalMemUsage: 0,
	}
}

type cacheEntry struct {
	entity    Entity
	timestamp int64 // The last time this entity was accessed
	memUsage  int
}

var cachedEntitiesMaxMem = getNumericEnv("GRYPHON_CACHED_ENTITIES_MAX_MEM_MB", 1*1024) * 1024 * 1024
var gryphonThreads = getNumericEnv("GRYPHON_THREADS", runtime.NumCPU())

func (entityCache *EntityCache) Get(guid GUID) (Entity, bool) {
	ts := ourTimestamp()
	entityCache.Lock()
	defer entityCache.Unlock()
	entry, exists := entityCache.cache[guid]
	if exists {
		entry.timestamp = ts
		entityCache.cache[guid] = entry
		return entry.entity, true
	}
	return nil, false
}

// Clear the entity cache.
func (entityCache *EntityCache) Clear() {
	entityCache.Lock()
	defer entityCache.Unlock()
	entityCache.cache = make(map[GUID]cacheEntry)
	entityCache.totalMemUsage = 0
}

// Set puts the entity in the cache.
// It also drops old items if the total memory usage of cached items
// exceeds cachedEntitiesMaxMem
func (entityCache *EntityCache) Set(guid GUID, entity Entity) {
	memUsage := entity.estimatedMemUsage()
	entityCache.Lock()
	defer entityCache.Unlock()
	_, exists := entityCache.cache[guid]
	if !exists {
		entityCache.cache[guid] = cacheEntry{
			entity:    entity,
			timestamp: ourTimestamp(),
			memUsage:  memUsage,
		}
		entityCache.totalMemUsage += memUsage
		entityCache.maybeGarbageCollect()
	}
	// It is legitimate that the entity is already in the cache. E.g., the host re-runs
	// an operation to re-create a missing output, but the rest of the outputs were not evicted.
	// But we do not want to update the timestamp for those.
}

func NotInCacheError(kind string, guid GUID) error {
	// If we drop something from the cache it will be reloaded before the next use.
	// The exception is when we drop it right after loading it. This generally means
	// the cache is too small.
	return fmt.Errorf("Could not fit %v %v into memory. Increase GRYPHON_CACHED_ENTITIES_MAX_MEM_MB?", kind, guid)
}

type entityEvictionItem struct {
	guid      GUID
	timestamp int64
	memUsage  int
}

func (entityCache *EntityCache) maybeGarbageCollect() {
	howMuchMemoryToRecycle := entityCache.totalMemUsage - cachedEntitiesMaxMem
	if howMuchMemoryToRecycle <= 0 {
		return
	}
	start := ourTimestamp()
	evictionCandidates := make([]entityEvictionItem, 0, len(entityCache.cache))
	for guid, e := range entityCache.cache {
		evictionCandidates = append(evictionCandidates, entityEvictionItem{
			guid:      guid,
			timestamp: e.timestamp,
			memUsage:  e.entity.estimatedMemUsage(),
		})
	}
	// Our timestamp is of nanosecond precision: this helps here to put inputs
	// before outputs.
	sort.Slice(evictionCandidates, func(i, j int) bool {
		return evictionCandidates[i].timestamp < evictionCandidates[j].timestamp
	})

	memEvicted := 0
	itemsEvicted := 0

	for i := 0; i < len(evictionCandidates) && memEvicted < howMuchMemoryToRecycle; i++ {
		guid := evictionCandidates[i].guid
		log.Printf("Evicting: %v\n", evictionCandidates[i])
		delete(entityCache.cache, guid)
		memEvicted += evictionCandidates[i].memUsage
		itemsEvicted++
	}
	log.Printf("Evicted %d entities (out of %d), estimated size: %d time: %d\n",
		itemsEvicted, len(evictionCandidates), memEvicted, (ourTimestamp()-start)/1000000)
	entityCache.totalMemUsage -= memEvicted
}

func ourTimestamp() int64 {
	// This must be precise
	return time.Now().UnixNano()
}

func boolSize() int {
	someBool := false
	return int(unsafe.Sizeof(someBool))
}

// The number of occupied bytes (sizeof) for our basic types
var int32Cost = int(unsafe.Sizeof(int32(0)))
var int64Cost = int(unsafe.Sizeof(int64(0)))
var float32Cost = int(unsafe.Sizeof(float32(0)))
var float64Cost = int(unsafe.Sizeof(float64(0)))
var boolCost = boolSize()

// Some of these are estimations
// But most are exact.

func (e *Scalar) estimatedMemUsage() int {
	return len(*e)
}

func (e *Graph) estimatedMemUsage() int {
	i := len(e.CSR.RowOffsets()) * int32Cost
	i += len(e.CSR.ColIndices()) * int32Cost
	i += len(e.CSR.Weights()) * float64Cost
	return i
}

func (e *IntAttribute) estimatedMemUsage() int {
	i := len(e.Defined) * boolCost
	i += len(e.Values) * int32Cost
	return i
}

func (e *LongAttribute) estimatedMemUsage() int {
	i := len(e.Defined) * boolCost
	i += len(e.Values) * int64Cost
	return i
}

func (e *FloatAttribute) estimatedMemUsage() int {
	i := len(e.Defined) * boolCost
	i += len(e.Values) * float32Cost
	return i
}

func (e *DoubleAttribute) estimatedMemUsage() int {
	i := len(e.Defined) * boolCost
	i += len(e.Values) * float64Cost
	return i
}

func getNumericEnv(key string, dflt int) int {
	s, exists := os.LookupEnv(key)
	if exists {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			pmsg := fmt.Sprintf("Cannot parse environment variable (%v) as int: %v", key, s)
			panic(pmsg)
		}
		return int(v)
	} else {
		return dflt
	}
}
