/*
Package dining implements the dining-philosophers scenario: N workers
arranged in a ring, each cycling through thinking, picking up its two
adjacent forks, eating, and putting the forks back down.

The interesting part is how the forks are picked up. Each philosopher needs
fork id and fork (id+1) mod N, and always requests the lower-numbered of the
two first. That single rule imposes one global total order over all forks,
and under it no cycle of waiters can form: a cycle would require some
philosopher to hold a higher-numbered fork while blocked on a lower-numbered
one it requested second, and no philosopher ever requests its forks in that
order. The naive "left fork first" rule deadlocks as soon as every
philosopher holds its left fork at the same moment; the ordered rule cannot.

Forks are handed out as ownership tokens: Table.Acquire blocks until the
fork is free, then returns a Fork that is the only way to release it, so a
release without a matching acquire is not expressible. Nothing here bounds
how long one philosopher may wait for its second fork under adversarial
scheduling; the package guarantees deadlock freedom, not fairness.
*/
package dining
