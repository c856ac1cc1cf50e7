/*
Package cbtree implements compact binary trees: intrusive, allocation-free
ordered containers over fixed key flavors, adapted from HAProxy's ceb/cba
family of C data structures.

A compact binary tree stores its nodes inline in caller-owned memory: there
is exactly one Node per key, embedded by value in whatever struct the
caller already allocates, and no separate node or leaf object is ever
created by the tree itself. Every node plays two roles over its lifetime —
once as an internal router directing a descent by one bit of the key, and
once as the leaf that terminates it — without a discriminating flag; which
role a given visit is in falls out of the structure of the descent itself.

This trades the rebalancing guarantees of an AVL or red-black tree for a
much smaller footprint and no auxiliary allocation on insert or delete: the
tree's shape is exactly the shape induced by the bit patterns of its keys.

Five tree constructors cover the original seven key flavors: NewU32, NewU64,
NewAddr (pointer identity), NewBytes (byte-block keys, copied via
NewMBNode or aliased via NewIMNode), and NewString (the two original
string flavors collapse into one, since a Go string is already an
immutable shared view with no separate "direct storage" variant to keep).
All five share one generic descent engine; only the small Ops
implementation differs between them.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package cbtree
